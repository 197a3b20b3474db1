package report

// DefaultKPIs are the KPI definitions a new reporting period starts from.
// Previously redefined inline by several dashboard components; fixed here
// as the one canonical copy.
var DefaultKPIs = []KPI{
	{
		ID:          "nearMissRate",
		Name:        "Near Miss Reporting Rate",
		Description: "Number of near misses reported per 100,000 hours worked",
		Target:      10,
		Unit:        "per 100K hrs",
	},
	{
		ID:          "criticalRiskVerification",
		Name:        "Critical Risk Verification",
		Description: "Percentage of critical risk tasks verified with appropriate controls",
		Target:      100,
		Unit:        "%",
	},
	{
		ID:          "electricalSafetyCompliance",
		Name:        "Electrical Safety Compliance",
		Description: "Percentage compliance with LOTO, work permits and PPE requirements",
		Target:      100,
		Unit:        "%",
	},
}

// DefaultCriticalRisks seeds the critical-risk protocol entries for a new
// period with an adequate baseline status.
var DefaultCriticalRisks = map[RiskProtocol]CriticalRisk{
	ProtocolWorkingAtHeight:    {Name: "Working at Height", Status: ControlAdequate},
	ProtocolConfinedSpace:      {Name: "Confined Space Entry", Status: ControlAdequate},
	ProtocolEnergyIsolation:    {Name: "Energy Isolation (LOTO)", Status: ControlAdequate},
	ProtocolLiftingOperations:  {Name: "Lifting Operations", Status: ControlAdequate},
	ProtocolVehiclesAndDriving: {Name: "Vehicles and Driving", Status: ControlAdequate},
	ProtocolHotWork:            {Name: "Hot Work", Status: ControlAdequate},
}

// NewDefaultKPIs returns a fresh copy stamped with the given year so
// callers can mutate without touching the canonical definitions.
func NewDefaultKPIs(year int) []KPI {
	kpis := make([]KPI, len(DefaultKPIs))
	copy(kpis, DefaultKPIs)
	for i := range kpis {
		kpis[i].Year = year
	}
	return kpis
}
