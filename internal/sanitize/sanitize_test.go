package sanitize_test

import (
	"testing"

	"github.com/headless-commerce/storefront-gateway/internal/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestProductHTML(t *testing.T) {

	t.Run("Scripts Removed, Structure Kept", func(t *testing.T) {
		input := `<p>Great mug</p><script>alert(1)</script><ul><li>Blue</li></ul>`

		got := sanitize.ProductHTML(input)

		assert.NotContains(t, got, "<script>")
		assert.NotContains(t, got, "alert(1)")
		assert.Contains(t, got, "<p>Great mug</p>")
		assert.Contains(t, got, "<li>Blue</li>")
	})

	t.Run("Event Handlers Stripped", func(t *testing.T) {
		input := `<img src="mug.jpg" onerror="steal()" alt="mug">`

		got := sanitize.ProductHTML(input)

		assert.NotContains(t, got, "onerror")
	})
}

func TestPlainText(t *testing.T) {

	t.Run("Markup And Shortcodes Collapse", func(t *testing.T) {
		input := `<div class="row">[ux_banner]  A  <b>blue</b>   mug&nbsp;&amp; saucer [/ux_banner]</div>`

		got := sanitize.PlainText(input, 160)

		assert.Equal(t, "A blue mug & saucer", got)
	})

	t.Run("Capped At Max Length", func(t *testing.T) {
		got := sanitize.PlainText("abcdefghij", 4)

		assert.Equal(t, "abcd", got)
	})

	t.Run("Zero Max Length Means Uncapped", func(t *testing.T) {
		got := sanitize.PlainText("abcdefghij", 0)

		assert.Equal(t, "abcdefghij", got)
	})
}
