package model

// Passport is the product sustainability passport document exchanged with the
// passport API. Every leaf value is a string on the wire.
type Passport struct {
	UUID          string        `json:"uuid,omitempty"`
	BasicDetails  BasicDetails  `json:"basic_details"`
	Materials     Materials     `json:"materials"`
	SupplyChain   SupplyChain   `json:"supply_chain"`
	Packaging     Packaging     `json:"packaging"`
	Environmental Environmental `json:"environmental"`
	CareAndRepair CareAndRepair `json:"care_and_repair"`
	EndOfLife     EndOfLife     `json:"end_of_life"`
}

// BasicDetails groups identification and physical properties.
type BasicDetails struct {
	BasicInformation          BasicInformation          `json:"basic_information"`
	PhysicalProperties        PhysicalProperties        `json:"physical_properties"`
	FeaturesAndSpecifications FeaturesAndSpecifications `json:"features_and_specifications"`
}

type BasicInformation struct {
	ProductName string `json:"product_name"`
	SKU         string `json:"SKU"`
	BatchNumber string `json:"batch_number"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type PhysicalProperties struct {
	Size      Size   `json:"size"`
	Color     string `json:"color"`
	WeightKg  string `json:"weight_kg"`
	VolumeCm3 string `json:"volume_cm3"`
}

type Size struct {
	HeightCm string `json:"height_cm"`
	WidthCm  string `json:"width_cm"`
	DepthCm  string `json:"depth_cm"`
}

type FeaturesAndSpecifications struct {
	KeyFeatures    string `json:"key_features"`
	Specifications string `json:"specifications"`
}

type Materials struct {
	MaterialsComposition MaterialsComposition `json:"materials_composition"`
}

type MaterialsComposition struct {
	Components          []Component `json:"components"`
	Certifications      string      `json:"certifications"`
	ChemicalInformation string      `json:"chemical_information"`
}

// Component is a material or packaging part of a product.
type Component struct {
	Component          string `json:"component"`
	Material           string `json:"material"`
	Supplier           string `json:"supplier"`
	WeightKg           string `json:"weight_kg"`
	RecycledPercentage string `json:"recycled_percentage"`
}

type SupplyChain struct {
	SupplyChainInformation SupplyChainInformation `json:"supply_chain_information"`
}

type SupplyChainInformation struct {
	Manufacturers          []Manufacturer         `json:"manufacturers"`
	ManufacturingProcesses []ManufacturingProcess `json:"manufacturing_processes"`
}

type Manufacturer struct {
	Name           string `json:"name"`
	Location       string `json:"location"`
	Role           string `json:"role"`
	Certifications string `json:"certifications"`
}

type ManufacturingProcess struct {
	Process  string `json:"process"`
	Location string `json:"location"`
}

type Packaging struct {
	PackagingDetails PackagingDetails `json:"packaging_details"`
}

type PackagingDetails struct {
	PackagingComponents  []Component `json:"packaging_components"`
	DisposalInstructions string      `json:"disposal_instructions"`
}

type Environmental struct {
	EnvironmentalImpact EnvironmentalImpact `json:"environmental_impact"`
}

type EnvironmentalImpact struct {
	CarbonFootprint   string `json:"carbon_footprint"`
	EnergyConsumption string `json:"energy_consumption"`
	WaterUsage        string `json:"water_usage"`
	WasteEmissions    string `json:"waste_emissions"`
	Recyclability     string `json:"recyclability"`
	CircularEconomy   string `json:"circular_economy"`
}

type CareAndRepair struct {
	CareInstructions  CareInstructions  `json:"care_instructions"`
	RepairInformation RepairInformation `json:"repair_information"`
}

type CareInstructions struct {
	CareInstructions string `json:"care_instructions"`
}

// RepairInformation keeps the API's "reparability" spelling on the wire.
type RepairInformation struct {
	Reparability   string `json:"reparability"`
	SpareParts     string `json:"spare_parts"`
	RepairServices string `json:"repair_services"`
}

type EndOfLife struct {
	EndOfLifeInformation EndOfLifeInformation `json:"end_of_life_information"`
}

type EndOfLifeInformation struct {
	DisassemblyInstructions string `json:"disassembly_instructions"`
	RecyclingOptions        string `json:"recycling_options"`
	TakeBackPrograms        string `json:"take_back_programs"`
}

// Name returns the product name of the passport.
func (p *Passport) Name() string {
	return p.BasicDetails.BasicInformation.ProductName
}

// WithoutUUID returns a copy of the passport suitable for a create request.
func (p Passport) WithoutUUID() Passport {
	p.UUID = ""
	return p
}
