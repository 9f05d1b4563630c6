// Package mechanical - HRC ↔ HB conversion
// Hardness scale conversions are empirical, not exact laws. The table
// below follows ASTM E140 for non-austenitic steels and is linearly
// interpolated between rows. Valid for HRC 20–55 (HB 226–545).
package mechanical

import (
	"mme-calc/internal/errors"
)

type hardnessRow struct {
	hrc float64
	hb  float64
}

// ASTM E140 Table 1, Rockwell C vs Brinell (3000 kgf, 10 mm ball)
var hrcHBTable = []hardnessRow{
	{20, 226}, {21, 231}, {22, 237}, {23, 243}, {24, 247},
	{25, 253}, {26, 258}, {27, 264}, {28, 271}, {29, 279},
	{30, 286}, {31, 294}, {32, 301}, {33, 311}, {34, 319},
	{35, 327}, {36, 336}, {37, 344}, {38, 353}, {39, 362},
	{40, 371}, {41, 381}, {42, 390}, {43, 400}, {44, 409},
	{45, 421}, {46, 432}, {47, 442}, {48, 453}, {49, 465},
	{50, 477}, {51, 489}, {52, 500}, {53, 514}, {54, 528},
	{55, 545},
}

// HRCToHB converts Rockwell C hardness to approximate Brinell hardness.
func HRCToHB(hrc float64) (float64, error) {
	if hrc < 20 || hrc > 55 {
		return 0, errors.Range("HRC must be in the range 20-55 for reliable conversion")
	}
	for i := 0; i < len(hrcHBTable)-1; i++ {
		lo, hi := hrcHBTable[i], hrcHBTable[i+1]
		if hrc >= lo.hrc && hrc <= hi.hrc {
			frac := (hrc - lo.hrc) / (hi.hrc - lo.hrc)
			return lo.hb + frac*(hi.hb-lo.hb), nil
		}
	}
	return hrcHBTable[len(hrcHBTable)-1].hb, nil
}

// HBToHRC converts Brinell hardness to approximate Rockwell C.
func HBToHRC(hb float64) (float64, error) {
	if hb < 226 || hb > 545 {
		return 0, errors.Range("HB must be in the range 226-545 for reliable conversion")
	}
	for i := 0; i < len(hrcHBTable)-1; i++ {
		lo, hi := hrcHBTable[i], hrcHBTable[i+1]
		if hb >= lo.hb && hb <= hi.hb {
			frac := (hb - lo.hb) / (hi.hb - lo.hb)
			return lo.hrc + frac*(hi.hrc-lo.hrc), nil
		}
	}
	return hrcHBTable[len(hrcHBTable)-1].hrc, nil
}
