package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSearchTerms_DropsShortWords(t *testing.T) {
	assert.Equal(t, []string{"red", "lipstick"}, SearchTerms("  red a lipstick x "))
	assert.Empty(t, SearchTerms("a b c"))
	assert.Empty(t, SearchTerms(""))
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t, "https://cdn.test/a.png?size=200x200", ThumbnailURL("https://cdn.test/a.png", "200x200"))
	assert.Equal(t, "https://cdn.test/a.png?v=2&size=small", ThumbnailURL("https://cdn.test/a.png?v=2", "small"))
	assert.Equal(t, "", ThumbnailURL("", "small"))
}

func TestBuildProductImages_FirstIsPrimary(t *testing.T) {
	productID := uuid.New()

	images := BuildProductImages(productID, []string{"https://cdn.test/1.png", " ", "https://cdn.test/2.png"})

	assert.Len(t, images, 2)
	assert.True(t, images[0].IsPrimary)
	assert.False(t, images[1].IsPrimary)
	assert.Equal(t, 0, images[0].SortOrder)
	assert.Equal(t, 2, images[1].SortOrder)
	assert.Equal(t, productID, images[1].ProductID)
}

func TestProduct_PrimaryImage(t *testing.T) {
	p := &Product{Images: []ProductImage{{ImageURL: "a"}, {ImageURL: "b", IsPrimary: true}}}
	assert.Equal(t, "b", p.PrimaryImage().ImageURL)

	p = &Product{Images: []ProductImage{{ImageURL: "a"}}}
	assert.Equal(t, "a", p.PrimaryImage().ImageURL)

	assert.Nil(t, (&Product{}).PrimaryImage())
}

func TestParseProductSort(t *testing.T) {
	assert.Equal(t, ProductSortPriceAsc, ParseProductSort("price_asc"))
	assert.Equal(t, ProductSortRating, ParseProductSort("rating"))
	assert.Equal(t, ProductSortNewest, ParseProductSort("bogus"))
	assert.Equal(t, ProductSortNewest, ParseProductSort(""))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.13, RoundMoney(10.125000001))
	assert.Equal(t, 0.3, RoundMoney(0.1+0.2))
}
