package images

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	// RegistryHost is the artifact registry hosting the tenant repositories
	RegistryHost = "us-central1-docker.pkg.dev"
	// RegistryOrg is the project owning the tenant repositories
	RegistryOrg = "molten-verve-216720"
)

// IsQualified reports whether the image already carries a registry path
func IsQualified(image string) bool {
	return strings.Contains(image, "/")
}

// Qualify rewrites a bare image name into the tenant repository path.
// Qualified images, and any image when no tenant is known, pass through unchanged.
func Qualify(image, tenant string) string {
	if IsQualified(image) || tenant == "" {
		return image
	}
	return fmt.Sprintf("%s/%s/%s-repository/%s", RegistryHost, RegistryOrg, tenant, image)
}

// QualifyAll applies Qualify to every image, keeping the order
func QualifyAll(images []string, tenant string) []string {
	return lo.Map(images, func(image string, _ int) string {
		return Qualify(image, tenant)
	})
}
