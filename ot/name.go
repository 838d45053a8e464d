package ot

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

const (
	nameHeaderSize    = 6
	nameRecordSize    = 12
	langTagRecordSize = 4
)

// Well known name IDs.
const (
	NameCopyright         uint16 = 0
	NameFamily            uint16 = 1
	NameSubfamily         uint16 = 2
	NameUniqueID          uint16 = 3
	NameFull              uint16 = 4
	NameVersion           uint16 = 5
	NamePostScript        uint16 = 6
	NameTypographicFamily uint16 = 16
	NameTypographicSubfam uint16 = 17
)

// Platform IDs
const (
	PlatformUnicode   uint16 = 0
	PlatformMacintosh uint16 = 1
	PlatformWindows   uint16 = 3
)

// NameRecord is a decoded entry of table 'name'.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Language   string // BCP 47 language tag, "" if unknown
	Value      string
}

// NameTable holds the decodable records of table 'name', in table order.
type NameTable struct {
	Format  uint16
	Records []NameRecord
}

// Names decodes table 'name'. Records with unsupported encodings are skipped.
func (otf *Font) Names() (*NameTable, error) {
	b, err := otf.tableData(T("name"))
	if err != nil {
		return nil, err
	}
	names, err := parseNames(b)
	return names, otf.ec.tableError(T("name"), "Names", err)
}

func parseNames(b binarySegm) (*NameTable, error) {
	if err := b.need(nameHeaderSize, "name header"); err != nil {
		return nil, err
	}
	format, count, strOff := b.U16(0), int(b.U16(2)), int(b.U16(4))
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if err := b.need(recordsEnd, "name records"); err != nil {
		return nil, err
	}
	if strOff > len(b) {
		return nil, errFontFormat(fmt.Sprintf("name table invalid string offset: %d", strOff))
	}
	storage := b[strOff:]
	var langTags []string
	if format == 1 && len(b) >= recordsEnd+2 {
		n := int(b.U16(recordsEnd))
		for i := range n {
			rec := recordsEnd + 2 + i*langTagRecordSize
			s, err := decodeNameString(storage, PlatformUnicode, 3, int(b.U16(rec)), int(b.U16(rec+2)))
			if err != nil {
				s = ""
			}
			langTags = append(langTags, s)
		}
	}
	names := &NameTable{Format: format}
	for i := range count {
		rec := b[nameHeaderSize+i*nameRecordSize:]
		nr := NameRecord{
			PlatformID: rec.U16(0),
			EncodingID: rec.U16(2),
			LanguageID: rec.U16(4),
			NameID:     rec.U16(6),
		}
		value, err := decodeNameString(storage, nr.PlatformID, nr.EncodingID, int(rec.U16(10)), int(rec.U16(8)))
		if err != nil {
			tracer().Debugf("skipping name record %d: %v", i, err)
			continue
		}
		nr.Value = value
		nr.Language = nameLanguage(nr.PlatformID, nr.LanguageID, langTags)
		names.Records = append(names.Records, nr)
	}
	return names, nil
}

// Localized iterates over all records for a name ID, yielding
// (language, value). Language is "" if unknown.
func (names *NameTable) Localized(nameID uint16) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if names == nil {
			return
		}
		for _, nr := range names.Records {
			if nr.NameID != nameID {
				continue
			}
			if !yield(nr.Language, nr.Value) {
				return
			}
		}
	}
}

// EnglishOrFirst returns the English entry for a name ID, or the first entry
// if no English entry exists.
func (names *NameTable) EnglishOrFirst(nameID uint16) (string, bool) {
	first, found := "", false
	for lang, value := range names.Localized(nameID) {
		if lang == "en" || strings.HasPrefix(lang, "en-") {
			return value, true
		}
		if !found {
			first, found = value, true
		}
	}
	return first, found
}

func decodeNameString(storage binarySegm, platform, encoding uint16, offset, length int) (string, error) {
	raw, err := storage.view(offset, length)
	if err != nil {
		return "", err
	}
	switch {
	case platform == PlatformUnicode, platform == PlatformWindows && (encoding == 0 || encoding == 1 || encoding == 10):
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		s, err := dec.Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decoding UTF-16 error: %v", err)
		}
		return string(s), nil
	case platform == PlatformMacintosh && encoding == 0:
		s, err := charmap.Macintosh.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decoding Mac Roman error: %v", err)
		}
		return string(s), nil
	}
	return "", fmt.Errorf("unsupported name encoding %d/%d", platform, encoding)
}

func nameLanguage(platform, langID uint16, langTags []string) string {
	var tag string
	switch {
	case langID >= 0x8000 && int(langID-0x8000) < len(langTags):
		tag = langTags[langID-0x8000]
	case platform == PlatformWindows:
		tag = windowsLanguages[langID]
	case platform == PlatformMacintosh:
		tag = macLanguages[langID]
	}
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}

// Windows LCIDs of the languages commonly found in font name tables.
var windowsLanguages = map[uint16]string{
	0x0401: "ar-SA", 0x0402: "bg-BG", 0x0403: "ca-ES", 0x0404: "zh-TW", 0x0405: "cs-CZ",
	0x0406: "da-DK", 0x0407: "de-DE", 0x0408: "el-GR", 0x0409: "en-US", 0x040A: "es-ES",
	0x040B: "fi-FI", 0x040C: "fr-FR", 0x040D: "he-IL", 0x040E: "hu-HU", 0x040F: "is-IS",
	0x0410: "it-IT", 0x0411: "ja-JP", 0x0412: "ko-KR", 0x0413: "nl-NL", 0x0414: "nb-NO",
	0x0415: "pl-PL", 0x0416: "pt-BR", 0x0418: "ro-RO", 0x0419: "ru-RU", 0x041A: "hr-HR",
	0x041B: "sk-SK", 0x041D: "sv-SE", 0x041E: "th-TH", 0x041F: "tr-TR", 0x0421: "id-ID",
	0x0422: "uk-UA", 0x0424: "sl-SI", 0x0425: "et-EE", 0x0426: "lv-LV", 0x0427: "lt-LT",
	0x0429: "fa-IR", 0x042A: "vi-VN", 0x0439: "hi-IN", 0x0804: "zh-CN", 0x0807: "de-CH",
	0x0809: "en-GB", 0x080A: "es-MX", 0x080C: "fr-BE", 0x0816: "pt-PT", 0x0C04: "zh-HK",
	0x0C07: "de-AT", 0x0C09: "en-AU", 0x0C0A: "es-ES", 0x0C0C: "fr-CA", 0x1004: "zh-SG",
	0x1009: "en-CA", 0x100C: "fr-CH", 0x1409: "en-NZ", 0x1809: "en-IE",
}

// Macintosh language codes of the languages commonly found in font name tables.
var macLanguages = map[uint16]string{
	0: "en", 1: "fr", 2: "de", 3: "it", 4: "nl", 5: "sv", 6: "es", 7: "da", 8: "pt",
	9: "nb", 10: "he", 11: "ja", 12: "ar", 13: "fi", 14: "el", 15: "is", 16: "mt",
	17: "tr", 18: "hr", 19: "zh-Hant", 20: "ur", 21: "hi", 22: "th", 23: "ko",
	24: "lt", 25: "pl", 26: "hu", 27: "et", 28: "lv", 30: "fo", 31: "fa", 32: "ru",
	33: "zh-Hans",
}
