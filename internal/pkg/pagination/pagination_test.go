package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, DefaultPerPage},
		{-3, 0, 1, DefaultPerPage},
		{1, 5, 1, 5},
		{7, 50, 7, 50},
		{1, 51, 1, MaxPerPage},
		{1, 999, 1, MaxPerPage},
		{1, -1, 1, 1},
	}

	for _, tt := range tests {
		p := Sanitize(tt.page, tt.perPage)
		assert.Equal(t, tt.wantPage, p.Page, "page for input %d/%d", tt.page, tt.perPage)
		assert.Equal(t, tt.wantPerPage, p.PerPage, "perPage for input %d/%d", tt.page, tt.perPage)
	}
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 5))
	assert.Equal(t, 1, LastPage(5, 5))
	assert.Equal(t, 2, LastPage(6, 5))
	assert.Equal(t, 3, LastPage(11, 5))
	assert.Equal(t, 20, LastPage(100, 5))
}

func TestNewEnvelopeMiddlePage(t *testing.T) {
	p := Sanitize(2, 5)
	env := NewEnvelope("/api/brands", p, 12, []int{6, 7, 8, 9, 10})

	assert.Equal(t, 2, env.CurrentPage)
	assert.Equal(t, 6, env.From)
	assert.Equal(t, 10, env.To)
	assert.Equal(t, 3, env.LastPage)
	assert.Equal(t, int64(12), env.Total)
	assert.Equal(t, "/api/brands?page=1", env.FirstPageURL)
	assert.Equal(t, "/api/brands?page=3", env.LastPageURL)
	require.NotNil(t, env.NextPageURL)
	assert.Equal(t, "/api/brands?page=3", *env.NextPageURL)
	require.NotNil(t, env.PrevPageURL)
	assert.Equal(t, "/api/brands?page=1", *env.PrevPageURL)
}

func TestNewEnvelopeEdges(t *testing.T) {
	first := NewEnvelope("/api/brands", Sanitize(1, 5), 12, nil)
	assert.Nil(t, first.PrevPageURL)
	require.NotNil(t, first.NextPageURL)

	last := NewEnvelope("/api/brands", Sanitize(3, 5), 12, nil)
	assert.Nil(t, last.NextPageURL)
	require.NotNil(t, last.PrevPageURL)
	assert.Equal(t, 11, last.From)
	assert.Equal(t, 12, last.To)
}

func TestNewEnvelopeSinglePage(t *testing.T) {
	env := NewEnvelope("/api/brands", Sanitize(1, 50), 3, nil)
	assert.Equal(t, 1, env.LastPage)
	assert.Nil(t, env.NextPageURL)
	assert.Nil(t, env.PrevPageURL)
	assert.Equal(t, 1, env.From)
	assert.Equal(t, 3, env.To)
}

// Concatenating every page must walk the full item range exactly once.
func TestPagesCoverAllItems(t *testing.T) {
	const total = int64(23)
	perPage := 5
	seen := map[int]bool{}

	last := LastPage(total, perPage)
	for page := 1; page <= last; page++ {
		p := Sanitize(page, perPage)
		env := NewEnvelope("/api/brands", p, total, nil)
		require.LessOrEqual(t, env.To-env.From+1, perPage)
		for i := env.From; i <= env.To; i++ {
			require.False(t, seen[i], fmt.Sprintf("item %d served twice", i))
			seen[i] = true
		}
	}
	assert.Len(t, seen, int(total))
}
