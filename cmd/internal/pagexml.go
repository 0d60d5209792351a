package internal

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ReadLines reads the text lines from the given file.  Files with an
// .xml suffix are interpreted as page xml documents and the Unicode
// content of their text lines is extracted; all other files are read
// line by line.
func ReadLines(name string) ([]string, error) {
	is, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("readLines %s: %v", name, err)
	}
	defer is.Close()
	if strings.HasSuffix(name, ".xml") {
		doc, err := xmlquery.Parse(is)
		if err != nil {
			return nil, fmt.Errorf("readLines %s: %v", name, err)
		}
		return pageXMLLines(doc), nil
	}
	var lines []string
	s := bufio.NewScanner(is)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("readLines %s: %v", name, err)
	}
	return lines, nil
}

// pageXMLLines returns the Unicode content of the document's text
// lines.  Only line-level TextEquiv entries are used; word-level
// entries below them are skipped.
func pageXMLLines(doc *xmlquery.Node) []string {
	var lines []string
	q := "//*[local-name()='TextLine']/*[local-name()='TextEquiv']/*[local-name()='Unicode']"
	for _, unicode := range xmlquery.Find(doc, q) {
		lines = append(lines, unicode.InnerText())
	}
	return lines
}
