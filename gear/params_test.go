package gear_test

import (
	"errors"
	"math"
	"testing"

	"deedles.dev/xgear/gear"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*gear.Params)
		field  string
	}{
		{"Default", func(*gear.Params) {}, ""},
		{"NoTeeth", func(p *gear.Params) { p.Teeth = 0 }, "Teeth"},
		{"NegativeTeeth", func(p *gear.Params) { p.Teeth = -3 }, "Teeth"},
		{"ZeroWidth", func(p *gear.Params) { p.ToothWidth = 0 }, "ToothWidth"},
		{"NaNWidth", func(p *gear.Params) { p.ToothWidth = math.NaN() }, "ToothWidth"},
		{"NegativeSlope", func(p *gear.Params) { p.SlopeWidth = -1 }, "SlopeWidth"},
		{"SlopeTooWide", func(p *gear.Params) { p.SlopeWidth = p.ToothWidth }, "SlopeWidth"},
		{"NoLand", func(p *gear.Params) { p.SlopeWidth = p.ToothWidth / 2 }, ""},
		{"ZeroDepth", func(p *gear.Params) { p.HalfDepth = 0 }, ""},
		{"InfDepth", func(p *gear.Params) { p.HalfDepth = math.Inf(1) }, "HalfDepth"},
		{"TooManyTeeth", func(p *gear.Params) { p.Teeth = math.MaxInt/gear.PointsPerTooth + 1 }, "Teeth"},
		{"MaxTeeth", func(p *gear.Params) { p.Teeth = math.MaxInt / gear.PointsPerTooth }, ""},
		{"CircumferenceOverflow", func(p *gear.Params) { p.Teeth, p.ToothWidth = 2, 1e308 }, "ToothWidth"},
		{"OuterRadiusOverflow", func(p *gear.Params) { p.Teeth, p.ToothWidth, p.HalfDepth = 1, 1e308, math.MaxFloat64 }, "HalfDepth"},
		{"InnerRadiusOverflow", func(p *gear.Params) { p.Teeth, p.ToothWidth, p.HalfDepth = 1, 1e308, -math.MaxFloat64 }, "HalfDepth"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := gear.DefaultParams()
			test.modify(&p)

			err := p.Validate()
			if test.field == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, gear.ErrInvalidParameter)
			var perr *gear.ParamError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, test.field, perr.Field)
		})
	}
}

func TestDims(t *testing.T) {
	p := gear.Params{Teeth: 4, ToothWidth: 4, SlopeWidth: 1, HalfDepth: 1}
	d := p.Dims()

	require.Equal(t, 16.0, d.Circumference)
	require.InDelta(t, 16/(2*math.Pi), d.MiddleRadius, 1e-12)
	require.InDelta(t, 2.546, d.MiddleRadius, 1e-3)
	require.InDelta(t, 1.546, d.InnerRadius, 1e-3)
	require.InDelta(t, 3.546, d.OuterRadius, 1e-3)
	require.InDelta(t, math.Pi/2, d.ToothAngle, 1e-12)
	require.InDelta(t, math.Pi/8, d.SlopeAngle, 1e-12)
	require.InDelta(t, math.Pi/8, d.LandAngle, 1e-12)
	require.Equal(t, 1.0, d.LandWidth)
}

func TestDefaultParams(t *testing.T) {
	require.Equal(t, gear.Params{Teeth: 32, ToothWidth: 4, SlopeWidth: 1, HalfDepth: 1}, gear.DefaultParams())
}
