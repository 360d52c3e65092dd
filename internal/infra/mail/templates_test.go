package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordTemplate(t *testing.T) {
	templates, err := loadTemplates()
	require.NoError(t, err)

	body, err := templates.render("forgot_password", map[string]string{
		"Name": "John Doe",
		"Link": "https://app.gobarber.test/reset-password?token=abc",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "https://app.gobarber.test/reset-password?token=abc")
}

func TestRenderUnknownTemplate(t *testing.T) {
	templates, err := loadTemplates()
	require.NoError(t, err)

	_, err = templates.render("no_such_template", nil)
	require.Error(t, err)
}
