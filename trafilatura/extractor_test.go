package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landingPage = `<!DOCTYPE html>
<html>
<head>
<title>Acme Cloud - Storage for growing teams</title>
<meta property="og:title" content="Acme Cloud">
</head>
<body>
<nav class="site-menu">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/pricing">Pricing</a></li>
<li><a href="/login">Log in</a></li>
</ul>
</nav>
<main>
<article>
<h1>Storage that grows with your business</h1>
<p>Acme Cloud keeps every file of your team safe, searchable and available from anywhere in the world.</p>
<p>Thousands of companies moved their data to Acme Cloud and cut their storage costs in half within a year.</p>
</article>
</main>
<footer>
<p>Copyright 2024 Acme Corporation</p>
</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(landingPage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("keeps the main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(landingPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "cut their storage costs in half")
	})

	t.Run("removes navigation and footer", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(landingPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "site-menu")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Acme Corporation")
	})

	t.Run("accepts a bare paragraph", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(`<html><body><p>Backups every hour, restores in one click.</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "restores in one click")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract(" \n")

		require.Error(t, err)
		assert.Equal(t, salience.EINVALID, salience.ErrorCode(err))
	})
}
