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

package scheme

import (
	"github.com/bfix/goecc/curve"
	"github.com/bfix/goecc/math"
)

func mustField(p string) *math.Field {
	return math.NewField(math.NewIntFromString(p))
}

// Curve25519 is the Montgomery curve 486662x^2+... used by X25519 key
// exchange, parameters from original_source/asymmetric.py's
// ECC_Curve25519.
var Curve25519 = func() *Scheme {
	f := mustField("57896044618658097711785492504343953926634992332820282019728792003956564819949") // 2^255-19
	c, err := curve.NewMontgomery(math.NewInt(486662), math.ONE, f)
	if err != nil {
		panic(err)
	}
	base := curve.NewPoint(
		math.NewInt(9),
		math.NewIntFromString("14781619447589544791020593568409986887264606134616475288964881837755586237401"),
	)
	order := math.NewIntFromString("7237005577332262213973186563042994240857116359379907606001950938285454250989")
	encode, decode := montgomeryXCodec(32)
	return &Scheme{
		Name:         "Curve25519",
		F:            f,
		Affine:       c,
		Montgomery:   c,
		Order:        order,
		BasePoint:    base,
		PrivSize:     32,
		PubSize:      32,
		LittleEnd:    true,
		cofactorBits: 254,
		encodePub:    encode,
		decodePub:    decode,
	}
}()

// Ed25519 is the twisted Edwards curve -x^2+y^2=1+dx^2y^2 birationally
// equivalent to Curve25519, parameters from
// original_source/asymmetric.py's ECC_Ed25519.
var Ed25519 = func() *Scheme {
	f := mustField("57896044618658097711785492504343953926634992332820282019728792003956564819949")
	d, err := f.Div(math.NewInt(-121665), math.NewInt(121666))
	if err != nil {
		panic(err)
	}
	c, err := curve.NewTwistedEdwards(math.NewInt(-1), d, f)
	if err != nil {
		panic(err)
	}
	base := curve.NewPoint(
		math.NewIntFromString("15112221349535400772501151409588531511454012693041857206046113283949847762202"),
		math.NewIntFromString("46316835694926478169428394003475163141307993866256225615783033603165251855960"),
	)
	order := math.NewIntFromString("7237005577332262213973186563042994240857116359379907606001950938285454250989")
	encode, decode := edwardsLikeCodec(c.GetX, 32)
	return &Scheme{
		Name:         "Ed25519",
		F:            f,
		Affine:       c,
		Order:        order,
		BasePoint:    base,
		PrivSize:     32,
		PubSize:      32,
		LittleEnd:    true,
		cofactorBits: 0,
		encodePub:    encode,
		decodePub:    decode,
	}
}()

// NISTP256 is the short Weierstrass curve secp256r1, parameters from
// original_source/asymmetric.py's ECC_NISTP256.
var NISTP256 = func() *Scheme {
	f := mustField("115792089210356248762697446949407573530086143415290314195533631308867097853951") // 2^256-2^224+2^192+2^96-1
	c, err := curve.NewShortWeierstrass(
		math.NewInt(-3),
		math.NewIntFromString("41058363725152142129326129780047268409114441015993725554835256314039467401291"),
		f,
	)
	if err != nil {
		panic(err)
	}
	base := curve.NewPoint(
		math.NewIntFromString("48439561293906451759052585252797914202762949526041747995844080717082404635286"),
		math.NewIntFromString("36134250956749795798585127919587881956611106672985015071877198253568414405109"),
	)
	order := math.NewIntFromString("115792089210356248762697446949407573529996955224135760342422259061068512044369")
	encode, decode := shortWeierstrassCodec(c, 32)
	return &Scheme{
		Name:      "NISTP256",
		F:         f,
		Affine:    c,
		Order:     order,
		BasePoint: base,
		PrivSize:  32,
		PubSize:   33,
		LittleEnd: false,
		encodePub: encode,
		decodePub: decode,
	}
}()

// NISTP384 is the short Weierstrass curve secp384r1, parameters from
// original_source/asymmetric.py's ECC_NISTP384.
var NISTP384 = func() *Scheme {
	f := mustField("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319") // 2^384-2^128-2^96+2^32-1
	c, err := curve.NewShortWeierstrass(
		math.NewInt(-3),
		math.NewIntFromString("27580193559959705877849011840389048093056905856361568521428707301988689241309860865136260764883745107765439761230575"),
		f,
	)
	if err != nil {
		panic(err)
	}
	base := curve.NewPoint(
		math.NewIntFromString("26247035095799689268623156744566981891852923491109213387815615900925518854738050089022388053975719786650872476732087"),
		math.NewIntFromString("8325710961489029985546751289520108179287853048861315594709205902480503199884419224438643760392947333078086511627871"),
	)
	order := math.NewIntFromString("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643")
	encode, decode := shortWeierstrassCodec(c, 48)
	return &Scheme{
		Name:      "NISTP384",
		F:         f,
		Affine:    c,
		Order:     order,
		BasePoint: base,
		PrivSize:  48,
		PubSize:   49,
		LittleEnd: false,
		encodePub: encode,
		decodePub: decode,
	}
}()

// Curve41417 is the Edwards curve x^2+y^2=1+3617x^2y^2, parameters from
// original_source/asymmetric.py's ECC_Curve41417.
var Curve41417 = func() *Scheme {
	f := mustField("42307582002575910332922579714097346549017899709713998034217522897561970639123926132812109468141778230245837569601494931472367") // 2^414-17
	c, err := curve.NewEdwards(math.NewInt(3617), f)
	if err != nil {
		panic(err)
	}
	base := curve.NewPoint(
		math.NewIntFromString("17319886477121189177719202498822615443556957307604340815256226171904769976866975908866528699294134494857887698432266169206165"),
		math.NewInt(34),
	)
	order := math.NewIntFromString("5288447750321988791615322464262168318627237463714249754277190328831105466135348245791335989419337099796002495788978276839289")
	encode, decode := edwardsLikeCodec(c.GetX, 52)
	return &Scheme{
		Name:         "Curve41417",
		F:            f,
		Affine:       c,
		Order:        order,
		BasePoint:    base,
		PrivSize:     52,
		PubSize:      52,
		LittleEnd:    true,
		cofactorBits: 413,
		encodePub:    encode,
		decodePub:    decode,
	}
}()

// Ed41417 is the EdDSA instantiation over the same Edwards curve as
// Curve41417; the reference source has no standalone Ed41417 class, but
// spec.md §4.7 calls for it alongside Ed25519, sharing Curve41417's
// field, curve and base point with uniform (uncofactored) private-key
// sampling, matching how Ed25519 samples relative to Curve25519.
var Ed41417 = func() *Scheme {
	return &Scheme{
		Name:      "Ed41417",
		F:         Curve41417.F,
		Affine:    Curve41417.Affine,
		Order:     Curve41417.Order,
		BasePoint: Curve41417.BasePoint,
		PrivSize:  52,
		PubSize:   52,
		LittleEnd: true,
		encodePub: Curve41417.encodePub,
		decodePub: Curve41417.decodePub,
	}
}()
