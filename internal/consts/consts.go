package consts

const (
	CHARGE     = 1.6021918e-19  // Elementary charge (C)
	BOLTZMANN  = 1.3806226e-23  // Boltzmann constant (J/K)
	KELVIN     = 273.15         // Kelvin temperature (K)
	PLANCK     = 6.62607015e-34 // Planck constant (J*s)
	LIGHTSPEED = 2.99792458e8   // Speed of light in vacuum (m/s)
	STEFAN     = 5.670374419e-8 // Stefan-Boltzmann constant (W/m^2/K^4)
)
