package registry

import (
	"math"

	"github.com/chongchonghe/acap/internal/quantity"
)

type unitDef struct {
	name  string
	scale float64
	dim   quantity.Dimension
	doc   string
}

// mech builds a mechanical dimension vector (length, mass, time exponents),
// which covers most of the table.
func mech(l, m, t int) quantity.Dimension {
	d := quantity.Dim(quantity.Length, l)
	d = d.Add(quantity.Dim(quantity.Mass, m))
	return d.Add(quantity.Dim(quantity.Time, t))
}

var (
	dLength = mech(1, 0, 0)
	dMass   = mech(0, 1, 0)
	dTime   = mech(0, 0, 1)
	dEnergy = mech(2, 1, -2)
	dPower  = mech(2, 1, -3)
	dPress  = mech(-1, 1, -2)
	dFreq   = mech(0, 0, -1)
	dDens   = mech(-3, 1, 0)
	dAngle  = quantity.Dim(quantity.Angle, 1)
	dSolid  = quantity.Dim(quantity.Angle, 2)

	// Gaussian electromagnetic units carry half-integer exponents over the
	// mechanical base instead of using the ampere.
	dESU = quantity.DimRat(quantity.Length, 3, 2).
		Add(quantity.DimRat(quantity.Mass, 1, 2)).
		Add(quantity.Dim(quantity.Time, -1))
	dGauss = quantity.DimRat(quantity.Length, -1, 2).
		Add(quantity.DimRat(quantity.Mass, 1, 2)).
		Add(quantity.Dim(quantity.Time, -1))
)

const (
	metersPerParsec = 3.0856775814913673e16
	metersPerAU     = 1.495978707e11
	secondsPerYear  = 3.15576e7 // Julian year
	joulesPerEV     = 1.602176634e-19
)

// unitDefs is the declarative unit table: name, SI scale factor, dimension
// vector. Registered once at startup, immutable afterwards.
var unitDefs = []unitDef{
	// SI base units
	{"m", 1, dLength, "meter"},
	{"kg", 1, dMass, "kilogram"},
	{"s", 1, dTime, "second"},
	{"A", 1, quantity.Dim(quantity.Current, 1), "ampere"},
	{"K", 1, quantity.Dim(quantity.Temperature, 1), "kelvin"},
	{"mol", 1, quantity.Dim(quantity.Amount, 1), "mole"},
	{"cd", 1, quantity.Dim(quantity.Luminosity, 1), "candela"},
	{"rad", 1, dAngle, "radian"},
	{"radian", 1, dAngle, "radian"},

	// Length
	{"cm", 1e-2, dLength, "centimeter"},
	{"mm", 1e-3, dLength, "millimeter"},
	{"um", 1e-6, dLength, "micrometer"},
	{"nm", 1e-9, dLength, "nanometer"},
	{"Ang", 1e-10, dLength, "angstrom"},
	{"Angstrom", 1e-10, dLength, "angstrom"},
	{"km", 1e3, dLength, "kilometer"},
	{"AU", metersPerAU, dLength, "astronomical unit"},
	{"Mpc", 1e6 * metersPerParsec, dLength, "megaparsec"},
	{"lyr", 9.4607304725808e15, dLength, "light year"},

	// Mass
	{"g", 1e-3, dMass, "gram"},
	{"Msun", 1.988409870698051e30, dMass, "solar mass"},

	// Density
	{"mpcc", 1.67262192369e-21, dDens, "proton mass per cubic centimeter"},

	// Time
	{"yr", secondsPerYear, dTime, "Julian year"},
	{"Myr", 1e6 * secondsPerYear, dTime, "megayear"},
	{"Gyr", 1e9 * secondsPerYear, dTime, "gigayear"},

	// Energy
	{"J", 1, dEnergy, "joule"},
	{"erg", 1e-7, dEnergy, "erg"},
	{"eV", joulesPerEV, dEnergy, "electronvolt"},
	{"keV", 1e3 * joulesPerEV, dEnergy, "kiloelectronvolt"},
	{"MeV", 1e6 * joulesPerEV, dEnergy, "megaelectronvolt"},
	{"GeV", 1e9 * joulesPerEV, dEnergy, "gigaelectronvolt"},

	// Power
	{"W", 1, dPower, "watt"},
	{"Lsun", 3.828e26, dPower, "solar luminosity"},

	// Pressure
	{"Pa", 1, dPress, "pascal"},
	{"bar", 1e5, dPress, "bar"},
	{"mbar", 1e2, dPress, "millibar"},

	// Frequency
	{"Hz", 1, dFreq, "hertz"},
	{"kHz", 1e3, dFreq, "kilohertz"},
	{"MHz", 1e6, dFreq, "megahertz"},
	{"GHz", 1e9, dFreq, "gigahertz"},

	// Angular size
	{"deg", math.Pi / 180, dAngle, "degree"},
	{"degree", math.Pi / 180, dAngle, "degree"},
	{"arcmin", math.Pi / 180 / 60, dAngle, "arcminute"},
	{"arcsec", math.Pi / 180 / 3600, dAngle, "arcsecond"},
	{"arcsec2", math.Pow(math.Pi/180/3600, 2), dSolid, "square arcsecond"},
	{"sr", 1, dSolid, "steradian"},

	// Astronomy
	{"Jy", 1e-26, mech(0, 1, -2), "jansky"},
	{"mJy", 1e-29, mech(0, 1, -2), "millijansky"},
	{"MJy", 1e-20, mech(0, 1, -2), "megajansky"},

	// Composite shorthands
	{"m2", 1, mech(2, 0, 0), "square meter"},
	{"m3", 1, mech(3, 0, 0), "cubic meter"},
	{"cm2", 1e-4, mech(2, 0, 0), "square centimeter"},
	{"cm3", 1e-6, mech(3, 0, 0), "cubic centimeter"},
	{"s2", 1, mech(0, 0, 2), "second squared"},
	{"pc2", metersPerParsec * metersPerParsec, mech(2, 0, 0), "square parsec"},
	{"pc3", metersPerParsec * metersPerParsec * metersPerParsec, mech(3, 0, 0), "cubic parsec"},

	// Gaussian electromagnetic units
	{"esu", 3.16227766016838e-5, dESU, "statcoulomb"},
	{"Gauss", 0.316227766016838, dGauss, "gauss"},
}
