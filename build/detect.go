package build

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// DefaultMaxSourceSize limits single source when configuration does not.
const DefaultMaxSourceSize = 32 << 20

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
	// no BOM, not UTF-8, decoded using charset declared in markup
	encDeclared
)

func (e srcEncoding) String() string {
	switch e {
	case encUTF8:
		return "UTF-8"
	case encUTF16BigEndian:
		return "UTF-16BE"
	case encUTF16LittleEndian:
		return "UTF-16LE"
	case encUTF32BigEndian:
		return "UTF-32BE"
	case encUTF32LittleEndian:
		return "UTF-32LE"
	case encDeclared:
		return "declared"
	}
	return "unknown"
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks at byte order mark. UTF-32LE must be checked before
// UTF-16LE since they share prefix.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 without byte order mark.
// Sources without BOM are expected to be UTF-8 already.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}
	return r
}

// isArchiveFile checks content, not extension.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// hasSourceExt reports if name has one of extensions, which must be sorted
// and lower case.
func hasSourceExt(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) == 0 {
		return false
	}
	_, found := slices.BinarySearch(extensions, ext)
	return found
}

// isBinary reports content containing NUL bytes. Image and archive
// signatures are only trusted when content is not valid UTF-8, text may
// legitimately start with "BM" or similar magic.
func isBinary(head []byte, valid bool) bool {
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}
	return !valid && (filetype.IsImage(head) || filetype.IsArchive(head))
}

// readSource reads whole source converting it to UTF-8. For binary content
// nil slice is returned without error. Sources larger than limit are
// refused.
func readSource(r io.Reader, size, limit int64) ([]byte, srcEncoding, error) {
	if size > limit {
		return nil, encUnknown, fmt.Errorf("source is too large (%s)", humanize.IBytes(uint64(size)))
	}
	br := bufio.NewReader(r)
	bom, _ := br.Peek(4)
	enc := detectUTF(bom)

	// UTF-32 to UTF-8 may not grow more than that
	data, err := io.ReadAll(io.LimitReader(selectReader(br, enc), 4*limit))
	if err != nil {
		return nil, enc, err
	}
	valid := utf8.Valid(data)
	if isBinary(data[:min(len(data), 512)], valid) {
		return nil, enc, nil
	}
	if enc == encUnknown && !valid {
		// legacy markup, look for <meta charset> and similar
		e, _, _ := charset.DetermineEncoding(data[:min(len(data), 1024)], "text/html")
		if data, err = e.NewDecoder().Bytes(data); err != nil {
			return nil, encDeclared, err
		}
		return data, encDeclared, nil
	}
	return data, enc, nil
}
