package params

// Defaults returns the baseline Benin 2025-2040 parameter set.
func Defaults() *Config {
	return &Config{
		Planning: Planning{
			HorizonYears:           15,
			PopGrowthRate:          0.027,
			WealthGrowthRate:       0.015,
			DiscountRate:           0.08,
			TargetUptakeRate:       0.85,
			UrbanUptakeRate:        0.95,
			UrbanHHSize:            4.3,
			RuralHHSize:            5.2,
			UrbanThresholdPop:      5000,
			UrbanBuildingThreshold: 500,
		},
		Demand: Demand{
			TierKWh:        Tiers(35, 220, 850),
			TierLoadFactor: Tiers(0.18, 0.20, 0.25),
			AnchorLoads: AnchorLoads{
				Health:     4000,
				Education:  1500,
				SME:        600,
				Irrigation: 3500,
				Mill:       4500,
				Dryer:      6000,
			},
			UrbanSMERatio: 50,
			RuralSMERatio: 100,
			Tier1Below:    -0.3,
			Tier2Below:    0.4,
			Mill:          AnchorRule{MinPopulation: 500, Divisor: 1500, RuralOnly: true},
			Irrigation:    AnchorRule{MinPopulation: 300, Divisor: 800, MaxWaterKm: Limit(3.0)},
			Dryer:         AnchorRule{MinPopulation: 400, Divisor: 2000, RuralOnly: true, MinLatitude: Limit(8.0)},
		},
		Grid: Grid{
			MVCostPerKm:          14000,
			LVCostPerKm:          5500,
			SubstationCost:       500000,
			TransformerCost:      8000,
			TransformerKVA:       45,
			ConnectionCost:       150,
			LossFactor:           0.18,
			EnergyPriceKWh:       0.10,
			LifetimeYears:        40,
			OMRate:               0.02,
			TransformerDiversity: 0.6,
			LVLinePerHH:          0.05,
			TerrainRoadKm:        10,
			TerrainMultiplier:    1.3,
		},
		MiniGrid: MiniGrid{
			PVCostPerKW:          700,
			BatteryCostPerKWh:    300,
			InverterCostPerKW:    180,
			ConnectionCost:       100,
			SolarCapacityFactor:  0.18,
			BatteryLifetimeYears: 7,
			ProjectLifetimeYears: 20,
			OMRate:               0.03,
			PVOversizing:         1.20,
			SysEfficiency:        0.85,
			BatteryDoD:           0.80,
			InverterMargin:       1.25,
			LVReticulationFactor: 0.1,
		},
		SHS: SHS{
			Costs:            Tiers(80, 250, 600),
			CapacityLimit:    Tiers(35, 150, 350),
			MaxSupportedTier: 3,
			LifetimeYears:    5,
			OMRate:           0.05,
			InfeasibleLCOE:   999.9,
		},
	}
}
