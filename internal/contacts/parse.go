package contacts

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// IsEmail reports whether a line looks like an email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ParseBlocks parses the 3-line clipboard format the help desk pastes in:
// a name line, then an email or phone line, then a line holding the org
// (optionally preceded by a tab-separated phone). Blank lines between
// blocks are ignored.
func ParseBlocks(r io.Reader) ([]Contact, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines)%3 != 0 {
		return nil, fmt.Errorf("input must be 3-line blocks (name, email/phone, phone/org), got %d lines", len(lines))
	}

	var out []Contact
	for i := 0; i < len(lines); i += 3 {
		name, line2, line3 := lines[i], lines[i+1], lines[i+2]

		c := Contact{Name: name}
		if IsEmail(line2) {
			c.Email = line2
		} else {
			c.Phone = line2
		}

		if before, after, found := strings.Cut(line3, "\t"); found {
			if c.Phone == "" {
				c.Phone = strings.TrimSpace(before)
			}
			c.Org = strings.TrimSpace(after)
		} else {
			c.Org = line3
		}

		out = append(out, c)
	}
	return out, nil
}
