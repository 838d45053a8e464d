package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/gobold"
)

func TestLoadPackaged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	for _, name := range []string{"Go-Regular", "go bold", "go-mono.ttf"} {
		f, err := Load(name)
		if err != nil {
			t.Errorf("cannot load packaged font %q: %v", name, err)
			continue
		}
		if f.Filepath != "" || len(f.Binary) == 0 {
			t.Errorf("expected packaged font for %q", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "MyBold.ttf")
	if err := os.WriteFile(path, gobold.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname != "Go Bold" || f.FileName() != "MyBold.ttf" {
		t.Errorf("unexpected font %q from %q", f.Fontname, f.FileName())
	}
	broken := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(broken, []byte("no font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Errorf("expected error for broken font file")
	}
}
