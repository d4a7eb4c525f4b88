package inputsettings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateLayoutsAlignsVariants(t *testing.T) {
	agg := AggregateLayouts([]LayoutID{"us", "de(nodeadkeys)"}, testRegistry())

	assert.Equal(t, "us,de", agg.Layouts)
	assert.Equal(t, ",nodeadkeys", agg.Variants)
	assert.True(t, agg.HasVariants)
}

func TestAggregateLayoutsSkipsMissing(t *testing.T) {
	agg := AggregateLayouts([]LayoutID{"xx", "fr"}, testRegistry())

	assert.Equal(t, "fr", agg.Layouts)
	assert.Equal(t, "", agg.Variants)
	assert.False(t, agg.HasVariants)
}

func TestAggregateLayoutsEmpty(t *testing.T) {
	agg := AggregateLayouts(nil, testRegistry())
	assert.Equal(t, LayoutAggregate{}, agg)
}
