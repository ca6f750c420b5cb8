// Package inject merges a config profile with a manifest template by
// replacing {{TOKEN}} placeholders with resolved values.
//
// Substitution is literal: no regex, no template engine, no recursion.
// Placeholders without a mapped token are left untouched, and inserted
// values are never re-scanned, so a value containing "{{" cannot
// trigger further replacement. This keeps the template format opaque —
// the tool never parses the manifest it renders.
package inject

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vce-tools/vce-deploy/internal/profile"
)

// Defaults applied when the profile omits a field.
const (
	DefaultServiceName   = "vce-editor"
	DefaultCPU           = "1"
	DefaultMemory        = "512Mi"
	DefaultCPURequest    = "500m"
	DefaultMemoryRequest = "256Mi"
	DefaultMinInstances  = 0
	DefaultMaxInstances  = 10
	DefaultConcurrency   = 80
)

// imageFormat builds the container image reference. The image is always
// derived from project and SHA; profiles cannot override it.
const imageFormat = "us-central1-docker.pkg.dev/%s/vce/vce-editor:%s"

// serviceAccountFormat is the conventional deploy service account used
// when the profile does not name one.
const serviceAccountFormat = "sa-vce@%s.iam.gserviceaccount.com"

// Token is one substitution entry. Tokens are applied in slice order.
type Token struct {
	Name  string
	Value string
}

// Values assembles the ordered token list for a profile, filling in
// defaults for absent fields.
func Values(p *profile.Profile, profileName, shortSHA, projectID string) []Token {
	cr := p.CloudRun

	serviceAccount := cr.ServiceAccount
	if serviceAccount == "" {
		serviceAccount = fmt.Sprintf(serviceAccountFormat, projectID)
	}

	return []Token{
		{"SERVICE_NAME", orDefault(cr.ServiceName, DefaultServiceName)},
		{"SHORT_SHA", shortSHA},
		{"SERVICE_ACCOUNT", serviceAccount},
		{"ENVIRONMENT", profile.Environment(profileName)},
		{"IMAGE", fmt.Sprintf(imageFormat, projectID, shortSHA)},
		{"CPU", orDefault(cr.Resources.CPU, DefaultCPU)},
		{"MEMORY", orDefault(cr.Resources.Memory, DefaultMemory)},
		{"CPU_REQUEST", orDefault(cr.Resources.CPURequest, DefaultCPURequest)},
		{"MEMORY_REQUEST", orDefault(cr.Resources.MemoryRequest, DefaultMemoryRequest)},
		{"MIN_INSTANCES", orDefaultInt(cr.Scaling.MinInstances, DefaultMinInstances)},
		{"MAX_INSTANCES", orDefaultInt(cr.Scaling.MaxInstances, DefaultMaxInstances)},
		{"CONCURRENCY", orDefaultInt(cr.Scaling.Concurrency, DefaultConcurrency)},
	}
}

// Render replaces every literal occurrence of {{NAME}} for each token,
// in token order. Tokens absent from the template are silently ignored.
func Render(template string, values []Token) string {
	result := template
	for _, tok := range values {
		result = strings.ReplaceAll(result, "{{"+tok.Name+"}}", tok.Value)
	}
	return result
}

// Inject loads the named profile, reads the template file verbatim, and
// returns the rendered manifest text. It performs no writes; the caller
// decides where the output goes.
func Inject(templatePath, profileName, shortSHA, projectID string) (string, error) {
	p, err := profile.Load(profileName)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", templatePath, err)
	}

	return Render(string(content), Values(p, profileName, shortSHA, projectID)), nil
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// orDefaultInt stringifies *n, or def when the field was absent.
func orDefaultInt(n *int, def int) string {
	if n == nil {
		return strconv.Itoa(def)
	}
	return strconv.Itoa(*n)
}
