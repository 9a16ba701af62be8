package gear

import (
	"strconv"
	"strings"

	"deedles.dev/xgear/geom"
)

// PathData formats points as a closed polygon path command of the
// form "M x1,y1 x2,y2 ... xN,yN Z", with each coordinate written to
// three decimal places. An empty slice produces an empty string.
func PathData(points []geom.Point[float64]) string {
	if len(points) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.Grow(len(points)*16 + 4)
	buf.WriteString("M")
	for _, p := range points {
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(p.X, 'f', 3, 64))
		buf.WriteByte(',')
		buf.WriteString(strconv.FormatFloat(p.Y, 'f', 3, 64))
	}
	buf.WriteString(" Z")
	return buf.String()
}
