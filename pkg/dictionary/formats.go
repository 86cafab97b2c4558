package dictionary

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ValidateCountsFile checks that filename looks like a well-formed
// `word<TAB>score` table before it is handed to the solver as a replacement
// embedded dictionary.
func ValidateCountsFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		log.Errorf("failed to open dictionary file %s: %v", filename, err)
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	checked := 0
	for scanner.Scan() && checked < 64 {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			log.Errorf("dictionary file %s line %d missing tab separator", filename, lineNo)
			return errors.New("missing tab separator")
		}
		if _, err := strconv.Atoi(line[tab+1:]); err != nil {
			log.Errorf("dictionary file %s line %d has non-integer score: %v", filename, lineNo, err)
			return errors.New("non-integer score")
		}
		checked++
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("failed to read dictionary file %s: %v", filename, err)
		return err
	}
	if checked == 0 {
		log.Errorf("dictionary file %s has no usable entries", filename)
		return errors.New("empty dictionary file")
	}
	log.Debugf("Dictionary file %s validated: %d sample lines checked", filename, checked)
	return nil
}
