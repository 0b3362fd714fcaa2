package models_test

import (
	"testing"

	"github.com/pest-report/api-go/models"
	"github.com/stretchr/testify/assert"
)

func TestRankForPoints(t *testing.T) {
	cases := []struct {
		points int
		rank   string
	}{
		{0, models.RankNovice},
		{10, models.RankNovice},
		{11, models.RankIntermediate},
		{15, models.RankIntermediate},
		{16, models.RankAdvanced},
		{25, models.RankAdvanced},
		{26, models.RankExpert},
		{100, models.RankExpert},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.rank, models.RankForPoints(tc.points), "points=%d", tc.points)
	}
}
