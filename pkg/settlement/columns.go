package settlement

// Column names shared by the loader, the model and every writer.
const (
	ColGeometry            = "geometry"
	ColID                  = "identifier"
	ColPopulation          = "population"
	ColNumBuildings        = "num_buildings"
	ColLatitude            = "lat"
	ColIsUrban             = "is_urban"
	ColHouseholds          = "households"
	ColTier                = "tier"
	ColRWI                 = "mean_rwi"
	ColNightlight          = "has_nightlight"
	ColDistSubstation      = "dist_to_substations"
	ColDistTransmission    = "distance_to_existing_transmission_lines"
	ColDistRoad            = "dist_main_road_km"
	ColDistWater           = "dist_lake_river_km"
	ColDistHub             = "dist_nearest_hub_km"
	ColHealthFacilities    = "num_health_facilities"
	ColEducationFacilities = "num_education_facilities"
	ColDemandResidential   = "dem_res"
	ColDemandCommercial    = "dem_comm"
	ColDemandAgri          = "dem_agri"
	ColDemandPublic        = "dem_pub"
	ColProjectedDemand     = "projected_demand"
	ColProjectedPeak       = "projected_peak"
	ColLCOEGrid            = "lcoe_grid"
	ColLCOEMiniGrid        = "lcoe_mg"
	ColLCOESHS             = "lcoe_shs"
	ColCapexGrid           = "capex_grid"
	ColCapexMiniGrid       = "capex_mg"
	ColCapexSHS            = "capex_shs"
	ColOptimalTech         = "optimal_tech"
	ColInvestment          = "investment"
)

// OutputColumns is the column order used by tabular writers.
var OutputColumns = []string{
	ColID, ColPopulation, ColNumBuildings, ColLatitude,
	ColRWI, ColNightlight,
	ColDistSubstation, ColDistTransmission, ColDistRoad, ColDistWater, ColDistHub,
	ColHealthFacilities, ColEducationFacilities,
	ColIsUrban, ColHouseholds, ColTier,
	ColDemandResidential, ColDemandCommercial, ColDemandAgri, ColDemandPublic,
	ColProjectedDemand, ColProjectedPeak,
	ColLCOEGrid, ColLCOEMiniGrid, ColLCOESHS,
	ColCapexGrid, ColCapexMiniGrid, ColCapexSHS,
	ColOptimalTech, ColInvestment,
}
