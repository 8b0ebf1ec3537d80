//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2023 Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package curve

import (
	"fmt"
	"testing"

	"github.com/bfix/goecc/math"
)

// toy short Weierstrass curve y^2 = x^3 + 2x + 3 over F_97, a textbook
// example small enough to brute-force a base point by hand.
func toyShortWeierstrass(t *testing.T) (*ShortWeierstrass, *Point) {
	f := math.NewField(math.NewInt(97))
	c, err := NewShortWeierstrass(math.NewInt(2), math.NewInt(3), f)
	if err != nil {
		t.Fatalf("NewShortWeierstrass: %v", err)
	}
	p := NewPoint(math.NewInt(3), math.NewInt(6))
	if !c.PointOnCurve(p) {
		t.Fatalf("test fixture point not on curve")
	}
	return c, p
}

func TestShortWeierstrassGroupLaw(t *testing.T) {
	c, g := toyShortWeierstrass(t)
	fmt.Println("testing short Weierstrass group law")

	if !c.Add(g, c.Neutral()).Equals(g) {
		t.Error("P+O != P")
	}
	if !c.Add(g, c.Invert(g)).Equals(c.Neutral()) {
		t.Error("P+(-P) != O")
	}
	sum := c.Add(g, g)
	dbl := c.Double(g)
	if !sum.Equals(dbl) {
		t.Error("P+P != 2P")
	}
	if !c.PointOnCurve(dbl) {
		t.Error("2P not on curve")
	}
	three := c.Add(dbl, g)
	if !c.PointOnCurve(three) {
		t.Error("3P not on curve")
	}
}

func TestShortWeierstrassProjectiveRoundTrip(t *testing.T) {
	c, g := toyShortWeierstrass(t)

	pp := c.AffineToProjective(g)
	back := c.ProjectiveToAffine(pp)
	if !back.Equals(g) {
		t.Fatalf("affine->projective->affine round trip failed: got %v want %v", back, g)
	}

	dblAffine := c.Double(g)
	dblProj := c.ProjectiveToAffine(c.DoubleProjective(pp))
	if !dblAffine.Equals(dblProj) {
		t.Errorf("projective double disagrees with affine: %v vs %v", dblProj, dblAffine)
	}

	sumAffine := c.Add(g, dblAffine)
	sumProj := c.ProjectiveToAffine(c.AddProjective(pp, c.AffineToProjective(dblAffine)))
	if !sumAffine.Equals(sumProj) {
		t.Errorf("projective add disagrees with affine: %v vs %v", sumProj, sumAffine)
	}
}

func toyMontgomery(t *testing.T) (*Montgomery, *Point) {
	// Curve25519 parameters over a small prime for test speed would not
	// stay a valid curve, so use a small Montgomery curve instead:
	// y^2 = x^3 + 3x^2 + x over F_101.
	f := math.NewField(math.NewInt(101))
	c, err := NewMontgomery(math.NewInt(3), math.NewInt(1), f)
	if err != nil {
		t.Fatalf("NewMontgomery: %v", err)
	}
	ys, err := c.GetY(math.NewInt(2))
	if err != nil || len(ys) == 0 {
		t.Fatalf("no y for x=2: %v", err)
	}
	return c, ys[0]
}

func TestMontgomeryGroupLaw(t *testing.T) {
	c, g := toyMontgomery(t)
	fmt.Println("testing Montgomery group law")

	if !c.Add(g, c.Neutral()).Equals(g) {
		t.Error("P+O != P")
	}
	if !c.Add(g, c.Invert(g)).Equals(c.Neutral()) {
		t.Error("P+(-P) != O")
	}
	dbl := c.Double(g)
	if !c.PointOnCurve(dbl) {
		t.Error("2P not on curve")
	}
	if !c.Add(g, g).Equals(dbl) {
		t.Error("P+P != 2P")
	}
}

func TestMontgomeryXZLadderConsistency(t *testing.T) {
	c, g := toyMontgomery(t)

	// R0 = O, R1 = P; one ladder step with bit=1 computes R0+R1 = P and 2*R1 = 2P.
	r0 := c.NeutralXZ()
	r1 := c.AffineToXZ(g)
	base := c.AffineToXZ(g)

	sum := c.DiffAdd(r1, r0, base) // R1+R0 = P+O = P
	sumAffine, err := c.XZToAffine(sum)
	if err != nil {
		t.Fatalf("XZToAffine: %v", err)
	}
	if sumAffine.X.Cmp(g.X) != 0 {
		t.Errorf("P+O via DiffAdd: got x=%v want x=%v", sumAffine.X, g.X)
	}

	dbl := c.DoubleXZ(r1)
	dblAffine, err := c.XZToAffine(dbl)
	if err != nil {
		t.Fatalf("XZToAffine: %v", err)
	}
	wantDbl := c.Double(g)
	if dblAffine.X.Cmp(wantDbl.X) != 0 {
		t.Errorf("DoubleXZ x-coordinate mismatch: got %v want %v", dblAffine.X, wantDbl.X)
	}
}

func toyEdwards(t *testing.T) (*Edwards, *Point) {
	// x^2+y^2 = 1 + d*x^2*y^2 over F_101 with a non-square d.
	f := math.NewField(math.NewInt(101))
	c, err := NewEdwards(math.NewInt(2), f)
	if err != nil {
		t.Fatalf("NewEdwards: %v", err)
	}
	pts, err := c.GetX(math.NewInt(5))
	if err != nil || len(pts) == 0 {
		t.Fatalf("no x for y=5: %v", err)
	}
	return c, pts[0]
}

func TestEdwardsGroupLaw(t *testing.T) {
	c, g := toyEdwards(t)
	fmt.Println("testing Edwards group law")

	if !c.PointOnCurve(g) {
		t.Fatalf("fixture point not on curve")
	}
	if !c.Add(g, c.Neutral()).Equals(g) {
		t.Error("P+O != P")
	}
	if !c.Add(g, c.Invert(g)).Equals(c.Neutral()) {
		t.Error("P+(-P) != O")
	}
	dbl := c.Double(g)
	if !c.PointOnCurve(dbl) {
		t.Error("2P not on curve")
	}
}

func TestEdwardsProjectiveRoundTrip(t *testing.T) {
	c, g := toyEdwards(t)

	pp := c.AffineToProjective(g)
	back := c.ProjectiveToAffine(pp)
	if !back.Equals(g) {
		t.Fatalf("affine->projective->affine round trip failed")
	}

	dblAffine := c.Double(g)
	dblProj := c.ProjectiveToAffine(c.DoubleProjective(pp))
	if !dblAffine.Equals(dblProj) {
		t.Errorf("projective double disagrees with affine: %v vs %v", dblProj, dblAffine)
	}
}

func toyTwistedEdwards(t *testing.T) (*TwistedEdwards, *Point) {
	f := math.NewField(math.NewInt(101))
	c, err := NewTwistedEdwards(math.NewInt(100), math.NewInt(2), f) // a=-1 mod 101
	if err != nil {
		t.Fatalf("NewTwistedEdwards: %v", err)
	}
	pts, err := c.GetX(math.NewInt(6))
	if err != nil || len(pts) == 0 {
		t.Fatalf("no x for y=6: %v", err)
	}
	return c, pts[0]
}

func TestTwistedEdwardsGroupLaw(t *testing.T) {
	c, g := toyTwistedEdwards(t)
	fmt.Println("testing twisted Edwards group law")

	if !c.PointOnCurve(g) {
		t.Fatalf("fixture point not on curve")
	}
	if !c.Add(g, c.Neutral()).Equals(g) {
		t.Error("P+O != P")
	}
	if !c.Add(g, c.Invert(g)).Equals(c.Neutral()) {
		t.Error("P+(-P) != O")
	}
	dbl := c.Double(g)
	if !c.PointOnCurve(dbl) {
		t.Error("2P not on curve")
	}
}

func TestTwistedEdwardsProjectiveRoundTrip(t *testing.T) {
	c, g := toyTwistedEdwards(t)

	pp := c.AffineToProjective(g)
	back := c.ProjectiveToAffine(pp)
	if !back.Equals(g) {
		t.Fatalf("affine->projective->affine round trip failed")
	}

	dblAffine := c.Double(g)
	dblProj := c.ProjectiveToAffine(c.DoubleProjective(pp))
	if !dblAffine.Equals(dblProj) {
		t.Errorf("projective double disagrees with affine: %v vs %v", dblProj, dblAffine)
	}
}

func TestMontgomeryShortWeierstrassIsomorphism(t *testing.T) {
	c, g := toyMontgomery(t)
	sw, toSW, toM, err := c.ToShortWeierstrass()
	if err != nil {
		t.Fatalf("ToShortWeierstrass: %v", err)
	}
	wp, err := toSW(g)
	if err != nil {
		t.Fatalf("toSW: %v", err)
	}
	if !sw.PointOnCurve(wp) {
		t.Fatalf("mapped point not on short Weierstrass curve")
	}
	back, err := toM(wp)
	if err != nil {
		t.Fatalf("toM: %v", err)
	}
	if !back.Equals(g) {
		t.Errorf("round trip through short Weierstrass failed: got %v want %v", back, g)
	}
}

func TestEdwardsMontgomeryIsomorphism(t *testing.T) {
	c, g := toyEdwards(t)
	mc, toM, toE, err := c.ToMontgomery()
	if err != nil {
		t.Fatalf("ToMontgomery: %v", err)
	}
	mp, err := toM(g)
	if err != nil {
		t.Fatalf("toM: %v", err)
	}
	if !mc.PointOnCurve(mp) {
		t.Fatalf("mapped point not on Montgomery curve")
	}
	back, err := toE(mp)
	if err != nil {
		t.Fatalf("toE: %v", err)
	}
	if !back.Equals(g) {
		t.Errorf("round trip through Montgomery failed: got %v want %v", back, g)
	}
}
