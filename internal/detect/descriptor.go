package detect

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// DescriptorFile is the widget package descriptor, relative to src/.
const DescriptorFile = "package.xml"

type packageDescriptor struct {
	XMLName       xml.Name `xml:"package"`
	ClientModules []struct {
		Name    string `xml:"name,attr"`
		Version string `xml:"version,attr"`
	} `xml:"clientModule"`
}

// ReadDescriptorVersion returns the version attribute of the first
// clientModule element, or "" when the descriptor declares none.
func ReadDescriptorVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}

	var pkg packageDescriptor
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	if len(pkg.ClientModules) == 0 {
		return "", fmt.Errorf("descriptor %s has no clientModule element", path)
	}
	return strings.TrimSpace(pkg.ClientModules[0].Version), nil
}

// NormalizeVersion pads a two-component version with ".0". Other versions
// pass through unchanged.
func NormalizeVersion(v string) string {
	if len(strings.Split(v, ".")) == 2 {
		return v + ".0"
	}
	return v
}
