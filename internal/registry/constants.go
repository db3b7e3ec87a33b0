package registry

import (
	"math"

	"github.com/chongchonghe/acap/internal/quantity"
)

type constantDef struct {
	name  string
	value float64
	dim   quantity.Dimension
	doc   string
}

var (
	dSpeed   = mech(1, 0, -1)
	dAccel   = mech(1, 0, -2)
	dGravity = mech(3, -1, -2)
	dAction  = mech(2, 1, -1) // J s
	dCharge  = quantity.Dim(quantity.Current, 1).Add(quantity.Dim(quantity.Time, 1))
	dEps0    = mech(-3, -1, 4).Add(quantity.Dim(quantity.Current, 2))
	dMu0     = mech(1, 1, -2).Add(quantity.Dim(quantity.Current, -2))
	dKB      = dEnergy.Sub(quantity.Dim(quantity.Temperature, 1))
	dMolGas  = dKB.Sub(quantity.Dim(quantity.Amount, 1))
	dStefan  = dPower.Sub(mech(2, 0, 0)).Sub(quantity.Dim(quantity.Temperature, 4))
	dMagMom  = mech(2, 0, 0).Add(quantity.Dim(quantity.Current, 1))
	dGM      = mech(3, 0, -2)
)

// constantDefs holds the physical constants, CODATA 2018 / IAU values in SI.
// The selection mirrors what astronomers reach for: fundamental constants,
// solar-system masses and radii, and the common distance scales.
var constantDefs = []constantDef{
	{"pi", math.Pi, quantity.Dimensionless, "ratio of circumference to diameter"},

	{"G", 6.6743e-11, dGravity, "gravitational constant"},
	{"c", 2.99792458e8, dSpeed, "speed of light in vacuum"},
	{"h", 6.62607015e-34, dAction, "Planck constant"},
	{"hbar", 1.054571817e-34, dAction, "reduced Planck constant"},
	{"k_B", 1.380649e-23, dKB, "Boltzmann constant"},
	{"m_e", 9.1093837015e-31, dMass, "electron mass"},
	{"m_p", 1.67262192369e-27, dMass, "proton mass"},
	{"m_n", 1.67492749804e-27, dMass, "neutron mass"},
	{"u", 1.6605390666e-27, dMass, "atomic mass unit"},
	{"e", 1.602176634e-19, dCharge, "elementary charge"},
	{"eps0", 8.8541878128e-12, dEps0, "vacuum electric permittivity"},
	{"mu0", 1.25663706212e-6, dMu0, "vacuum magnetic permeability"},
	{"N_A", 6.02214076e23, quantity.Dim(quantity.Amount, -1), "Avogadro constant"},
	{"R", 8.31446261815324, dMolGas, "molar gas constant"},
	{"Ryd", 1.097373156816e7, mech(-1, 0, 0), "Rydberg constant"},
	{"a0", 5.29177210903e-11, dLength, "Bohr radius"},
	{"alpha", 7.2973525693e-3, quantity.Dimensionless, "fine-structure constant"},
	{"atm", 101325, dPress, "standard atmosphere"},
	{"b_wien", 2.897771955e-3, dLength.Add(quantity.Dim(quantity.Temperature, 1)), "Wien wavelength displacement constant"},
	{"g0", 9.80665, dAccel, "standard gravitational acceleration"},
	{"muB", 9.2740100783e-24, dMagMom, "Bohr magneton"},
	{"sigma_sb", 5.670374419e-8, dStefan, "Stefan-Boltzmann constant"},
	{"sigma_T", 6.6524587321e-29, mech(2, 0, 0), "Thomson cross section"},

	{"GM_sun", 1.3271244e20, dGM, "solar mass parameter"},
	{"GM_earth", 3.986004e14, dGM, "Earth mass parameter"},
	{"GM_jup", 1.2668653e17, dGM, "Jupiter mass parameter"},
	{"L_sun", 3.828e26, dPower, "solar luminosity"},
	{"L_bol0", 3.0128e28, dPower, "zero point bolometric luminosity"},
	{"M_sun", 1.988409870698051e30, dMass, "solar mass"},
	{"M_earth", 5.972167867791379e24, dMass, "Earth mass"},
	{"M_jup", 1.8981245973360505e27, dMass, "Jupiter mass"},
	{"R_sun", 6.957e8, dLength, "nominal solar radius"},
	{"R_earth", 6.3781e6, dLength, "nominal Earth equatorial radius"},
	{"R_jup", 7.1492e7, dLength, "nominal Jupiter equatorial radius"},

	{"au", metersPerAU, dLength, "astronomical unit"},
	{"pc", metersPerParsec, dLength, "parsec"},
	{"kpc", 1e3 * metersPerParsec, dLength, "kiloparsec"},
}
