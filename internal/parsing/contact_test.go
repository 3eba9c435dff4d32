package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsContactLine_Email(t *testing.T) {
	assert.True(t, IsContactLine("📧 john@email.com"))
	assert.True(t, IsContactLine("john@email.com"))
}

func TestIsContactLine_PlatformURLsCaseInsensitive(t *testing.T) {
	assert.True(t, IsContactLine("https://linkedin.com/in/johndoe"))
	assert.True(t, IsContactLine("HTTPS://LINKEDIN.COM/IN/JOHNDOE"))
	assert.True(t, IsContactLine("github.com/johndoe"))
	assert.True(t, IsContactLine("GitHub.com/johndoe"))
}

func TestIsContactLine_PlatformLabelsCaseSensitive(t *testing.T) {
	assert.True(t, IsContactLine("LinkedIn: johndoe"))
	assert.True(t, IsContactLine("GitHub: johndoe"))
	assert.True(t, IsContactLine("Website: example.dev"))
	assert.True(t, IsContactLine("Portfolio: example.dev"))

	// Bare lowercase labels are prose, not contact info.
	assert.False(t, IsContactLine("built a website for clients"))
	assert.False(t, IsContactLine("portfolio of projects"))
}

func TestIsContactLine_Locations(t *testing.T) {
	assert.True(t, IsContactLine("Miami, Florida"))
	assert.True(t, IsContactLine("San Francisco, California"))
	assert.True(t, IsContactLine("New York, NY"))
	assert.True(t, IsContactLine("Austin, Texas"))
	assert.True(t, IsContactLine("Springfield, USA"))
	assert.True(t, IsContactLine("Remote"))
}

func TestIsContactLine_NonContact(t *testing.T) {
	assert.False(t, IsContactLine(""))
	assert.False(t, IsContactLine("Engineer with ten years of experience"))
	assert.False(t, IsContactLine("• Built the billing pipeline"))
}
