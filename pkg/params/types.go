package params

// Config is the full parameter set for one planning run.
type Config struct {
	Planning Planning `yaml:"planning" toml:"planning" json:"planning"`
	Demand   Demand   `yaml:"demand" toml:"demand" json:"demand"`
	Grid     Grid     `yaml:"grid" toml:"grid" json:"grid"`
	MiniGrid MiniGrid `yaml:"minigrid" toml:"minigrid" json:"minigrid"`
	SHS      SHS      `yaml:"shs" toml:"shs" json:"shs"`
}

// Planning holds horizon, growth and household assumptions.
type Planning struct {
	HorizonYears           int     `yaml:"horizon_years" toml:"horizon_years" json:"horizon_years"`
	PopGrowthRate          float64 `yaml:"pop_growth_rate" toml:"pop_growth_rate" json:"pop_growth_rate"`
	WealthGrowthRate       float64 `yaml:"wealth_growth_rate" toml:"wealth_growth_rate" json:"wealth_growth_rate"`
	DiscountRate           float64 `yaml:"discount_rate" toml:"discount_rate" json:"discount_rate"`
	TargetUptakeRate       float64 `yaml:"target_uptake_rate" toml:"target_uptake_rate" json:"target_uptake_rate"`
	UrbanUptakeRate        float64 `yaml:"urban_uptake_rate" toml:"urban_uptake_rate" json:"urban_uptake_rate"`
	UrbanHHSize            float64 `yaml:"urban_hh_size" toml:"urban_hh_size" json:"urban_hh_size"`
	RuralHHSize            float64 `yaml:"rural_hh_size" toml:"rural_hh_size" json:"rural_hh_size"`
	UrbanThresholdPop      int     `yaml:"urban_threshold_pop" toml:"urban_threshold_pop" json:"urban_threshold_pop"`
	UrbanBuildingThreshold int     `yaml:"urban_building_threshold" toml:"urban_building_threshold" json:"urban_building_threshold"`
}

// Demand holds the MTF consumption profiles and anchor loads (kWh/year).
type Demand struct {
	TierKWh        TierTable   `yaml:"tier_kwh" toml:"tier_kwh" json:"tier_kwh"`
	TierLoadFactor TierTable   `yaml:"tier_lf" toml:"tier_lf" json:"tier_lf"`
	AnchorLoads    AnchorLoads `yaml:"anchor_loads" toml:"anchor_loads" json:"anchor_loads"`
	UrbanSMERatio  float64     `yaml:"urban_sme_ratio" toml:"urban_sme_ratio" json:"urban_sme_ratio"`
	RuralSMERatio  float64     `yaml:"rural_sme_ratio" toml:"rural_sme_ratio" json:"rural_sme_ratio"`

	// Wealth index cut-offs: below Tier1Below is tier 1, below Tier2Below is tier 2.
	Tier1Below float64 `yaml:"rwi_tier1_below" toml:"rwi_tier1_below" json:"rwi_tier1_below"`
	Tier2Below float64 `yaml:"rwi_tier2_below" toml:"rwi_tier2_below" json:"rwi_tier2_below"`

	Mill       AnchorRule `yaml:"mill" toml:"mill" json:"mill"`
	Irrigation AnchorRule `yaml:"irrigation" toml:"irrigation" json:"irrigation"`
	Dryer      AnchorRule `yaml:"dryer" toml:"dryer" json:"dryer"`
}

// AnchorLoads are the annual consumptions of discrete non-residential users.
type AnchorLoads struct {
	Health     float64 `yaml:"health" toml:"health" json:"health"`
	Education  float64 `yaml:"education" toml:"education" json:"education"`
	SME        float64 `yaml:"sme" toml:"sme" json:"sme"`
	Irrigation float64 `yaml:"irrigation" toml:"irrigation" json:"irrigation"`
	Mill       float64 `yaml:"mill" toml:"mill" json:"mill"`
	Dryer      float64 `yaml:"dryer" toml:"dryer" json:"dryer"`
}

// AnchorRule gates one agricultural anchor load. A settlement contributes
// max(1, floor(population/Divisor)) units once it passes the rule.
// A nil MaxWaterKm or MinLatitude disables that gate; a set value is always
// enforced, so max_water_km: 0 admits no settlement.
type AnchorRule struct {
	MinPopulation int      `yaml:"min_population" toml:"min_population" json:"min_population"`
	Divisor       int      `yaml:"divisor" toml:"divisor" json:"divisor"`
	RuralOnly     bool     `yaml:"rural_only" toml:"rural_only" json:"rural_only"`
	MaxWaterKm    *float64 `yaml:"max_water_km,omitempty" toml:"max_water_km,omitempty" json:"max_water_km,omitempty"`
	MinLatitude   *float64 `yaml:"min_latitude,omitempty" toml:"min_latitude,omitempty" json:"min_latitude,omitempty"`
}

// Limit returns a pointer to v for the optional AnchorRule gates.
func Limit(v float64) *float64 {
	return &v
}

// Grid holds grid-extension costs.
type Grid struct {
	MVCostPerKm          float64 `yaml:"mv_cost_per_km" toml:"mv_cost_per_km" json:"mv_cost_per_km"`
	LVCostPerKm          float64 `yaml:"lv_cost_per_km" toml:"lv_cost_per_km" json:"lv_cost_per_km"`
	SubstationCost       float64 `yaml:"substation_cost" toml:"substation_cost" json:"substation_cost"`
	TransformerCost      float64 `yaml:"transformer_cost" toml:"transformer_cost" json:"transformer_cost"`
	TransformerKVA       float64 `yaml:"transformer_kva" toml:"transformer_kva" json:"transformer_kva"`
	ConnectionCost       float64 `yaml:"connection_cost" toml:"connection_cost" json:"connection_cost"`
	LossFactor           float64 `yaml:"loss_factor" toml:"loss_factor" json:"loss_factor"`
	EnergyPriceKWh       float64 `yaml:"energy_price_usd_kwh" toml:"energy_price_usd_kwh" json:"energy_price_usd_kwh"`
	LifetimeYears        int     `yaml:"lifetime_years" toml:"lifetime_years" json:"lifetime_years"`
	OMRate               float64 `yaml:"om_rate" toml:"om_rate" json:"om_rate"`
	TransformerDiversity float64 `yaml:"transformer_diversity" toml:"transformer_diversity" json:"transformer_diversity"`
	LVLinePerHH          float64 `yaml:"lv_line_per_hh" toml:"lv_line_per_hh" json:"lv_line_per_hh"`
	TerrainRoadKm        float64 `yaml:"terrain_road_km" toml:"terrain_road_km" json:"terrain_road_km"`
	TerrainMultiplier    float64 `yaml:"terrain_multiplier" toml:"terrain_multiplier" json:"terrain_multiplier"`
}

// MiniGrid holds solar + battery mini-grid costs.
type MiniGrid struct {
	PVCostPerKW          float64 `yaml:"pv_cost_per_kw" toml:"pv_cost_per_kw" json:"pv_cost_per_kw"`
	BatteryCostPerKWh    float64 `yaml:"battery_cost_per_kwh" toml:"battery_cost_per_kwh" json:"battery_cost_per_kwh"`
	InverterCostPerKW    float64 `yaml:"inverter_cost_per_kw" toml:"inverter_cost_per_kw" json:"inverter_cost_per_kw"`
	ConnectionCost       float64 `yaml:"connection_cost" toml:"connection_cost" json:"connection_cost"`
	SolarCapacityFactor  float64 `yaml:"solar_capacity_factor" toml:"solar_capacity_factor" json:"solar_capacity_factor"`
	BatteryLifetimeYears int     `yaml:"battery_lifetime_years" toml:"battery_lifetime_years" json:"battery_lifetime_years"`
	ProjectLifetimeYears int     `yaml:"project_lifetime_years" toml:"project_lifetime_years" json:"project_lifetime_years"`
	OMRate               float64 `yaml:"om_rate" toml:"om_rate" json:"om_rate"`
	PVOversizing         float64 `yaml:"pv_oversizing" toml:"pv_oversizing" json:"pv_oversizing"`
	SysEfficiency        float64 `yaml:"sys_efficiency" toml:"sys_efficiency" json:"sys_efficiency"`
	BatteryDoD           float64 `yaml:"battery_dod" toml:"battery_dod" json:"battery_dod"`
	InverterMargin       float64 `yaml:"inverter_margin" toml:"inverter_margin" json:"inverter_margin"`
	LVReticulationFactor float64 `yaml:"lv_reticulation_factor" toml:"lv_reticulation_factor" json:"lv_reticulation_factor"`
}

// SHS holds solar home system costs by tier.
type SHS struct {
	Costs            TierTable `yaml:"costs" toml:"costs" json:"costs"`
	CapacityLimit    TierTable `yaml:"capacity_limit" toml:"capacity_limit" json:"capacity_limit"`
	MaxSupportedTier int       `yaml:"max_supported_tier" toml:"max_supported_tier" json:"max_supported_tier"`
	LifetimeYears    int       `yaml:"lifetime_years" toml:"lifetime_years" json:"lifetime_years"`
	OMRate           float64   `yaml:"om_rate" toml:"om_rate" json:"om_rate"`
	InfeasibleLCOE   float64   `yaml:"infeasible_lcoe" toml:"infeasible_lcoe" json:"infeasible_lcoe"`
}
