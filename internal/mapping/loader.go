package mapping

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"metabatch/internal/diagnostic"
	"metabatch/utils"
)

var (
	// flatKeyRe matches flat metadata element destinations.
	flatKeyRe = regexp.MustCompile(`^[\w.]+$`)

	// docPathRe matches absolute document path destinations with an
	// optional trailing attribute.
	docPathRe = regexp.MustCompile(`^/resource(/\w+)+(@\w+)?$`)
)

// IDKey is the reserved flat destination naming the identifier.
const IDKey = "_id"

// Load reads mapping rules, one per line. Any invalid line aborts the
// whole load with a config error carrying the 1-based line number.
func Load(r io.Reader) ([]Rule, error) {
	var rules []Rule

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		parts := strings.Split(strings.TrimSpace(scanner.Text()), "=")
		if len(parts) != 2 {
			return nil, diagnostic.Newf(diagnostic.KindConfig,
				"line %d: invalid mapping syntax, want destination = expression", line)
		}

		destination, expression := utils.Unpack2(parts)
		destination = strings.TrimSpace(destination)
		expression = strings.TrimSpace(expression)

		if strings.HasPrefix(destination, "/") {
			if !docPathRe.MatchString(destination) {
				return nil, diagnostic.Newf(diagnostic.KindConfig,
					"line %d: invalid document path %q", line, destination)
			}
		} else if !flatKeyRe.MatchString(destination) {
			return nil, diagnostic.Newf(diagnostic.KindConfig,
				"line %d: invalid element name %q", line, destination)
		}

		rules = append(rules, Rule{Destination: destination, Expression: expression})
	}

	if err := scanner.Err(); err != nil {
		return nil, diagnostic.Wrap(diagnostic.KindConfig, err, "read mappings")
	}

	return rules, nil
}

// LoadFile loads mapping rules from the given path.
func LoadFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.KindConfig, err, "open mappings file")
	}
	defer f.Close()

	rules, err := Load(f)
	if err != nil {
		return nil, diagnostic.Annotate(err, "%s", path)
	}

	return rules, nil
}

// RequireID verifies that some rule maps the reserved _id element.
// Create and update operations need it to address the identifier.
func RequireID(rules []Rule) error {
	for _, r := range rules {
		if !r.IsDocumentPath() && r.Destination == IDKey {
			return nil
		}
	}

	return diagnostic.Newf(diagnostic.KindConfig, "operation requires a mapping to %s", IDKey)
}
