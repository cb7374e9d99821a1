package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rekap.pdf")

	err := NewPDFExporter("MTs. An-Nur Bululawang").Write(fixtureReport(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must be a PDF document")
	assert.Contains(t, string(data[len(data)-64:]), "%%EOF")
	// Recap, summary, and the three ranking tables each get a page.
	assert.Contains(t, string(data), "/Count 5")
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("90EE90")
	assert.Equal(t, []int{0x90, 0xEE, 0x90}, []int{r, g, b})

	r, g, b = hexToRGB("bukan-warna")
	assert.Equal(t, []int{255, 255, 255}, []int{r, g, b}, "unparseable colors fall back to white")
}
