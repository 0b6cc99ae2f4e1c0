package db

// Reference rows provisioned on first setup. Client names keep the
// site suffix (and the unicode dash) exactly as the office uses them,
// since records store the label as free text.

var DefaultClients = []string{
	"L & T P1 – Rambali", "L & T P2 – Rambali", "KEC – Rambali", "JS Mining – Rambali",
	"ITD – Rambali", "Sowaparnika – Rambali", "L & T Jio – Sindhiya", "Arabind – Shela Nagar",
	"RKD – Shela Nagar", "Afcyan – Shela Ngr", "Bharath Verma – Airport", "Aparna RMC – Gajuwaka",
	"ACC RMC – Gajuwaka", "Prisam RMC – Gajuwaka", "Nuvoco RMC – Gajuwaka", "Ultratech – Mindi",
	"MK Builders – Madhurwada", "North Star Homes – Madhurwada", "Coastal RMC – Madhurwada",
	"Coastal RMC – Achututapuram", "Vizag Port – Vizag Port",
}

var DefaultVehicles = []string{
	"AP39UJ1166", "AP39UJ2399", "AP39UZ3659", "AP39VF1899", "AP39UJ5678",
	"AP39VF2339", "AP39W3579", "AP39WC2389", "AP39TV2537", "AP39VE2979",
	"AP39WD5679", "AP31TN2579", "AP39UJ2489", "AP39TV2536", "AP39WD8349",
	"AP39UY3345", "AP39UY3435", "AP39VC5289", "AP39WD4199", "AP39WC7449",
	"AP39UZ3335", "AP39UH2489", "AP31TN4302", "AP39VB8829", "AP39UU5665",
	"AP39VB2427", "AP39UD1589", "AP39UF3245", "AP39UG0559",
}
