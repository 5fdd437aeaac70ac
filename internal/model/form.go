package model

// Category is a selectable product category.
type Category struct {
	Value string
	Label string
}

// Categories lists the categories offered by the product form, in display order.
var Categories = []Category{
	{Value: "electronics", Label: "Electronics"},
	{Value: "clothing", Label: "Clothing"},
	{Value: "food", Label: "Food & Beverage"},
	{Value: "health", Label: "Health & Beauty"},
	{Value: "home", Label: "Home & Garden"},
	{Value: "other", Label: "Other"},
}

// CategoryLabel returns the display label of a category value, or the value
// itself when it is unknown.
func CategoryLabel(value string) string {
	for _, c := range Categories {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// PassportForm is the flat form posted by the dashboard product editor.
// It holds two slots for every repeated passport section.
type PassportForm struct {
	UUID string `schema:"uuid" json:"uuid"`

	Name           string `schema:"name" json:"name"`
	SKU            string `schema:"sku" json:"sku"`
	Batch          string `schema:"batch" json:"batch"`
	Category       string `schema:"category" json:"category"`
	Description    string `schema:"description" json:"description"`
	SizeHeight     string `schema:"size_height" json:"size_height"`
	SizeWidth      string `schema:"size_width" json:"size_width"`
	SizeDepth      string `schema:"size_depth" json:"size_depth"`
	Color          string `schema:"color" json:"color"`
	Weight         string `schema:"weight" json:"weight"`
	Volume         string `schema:"volume" json:"volume"`
	Features       string `schema:"features" json:"features"`
	Specifications string `schema:"specifications" json:"specifications"`

	Component1          string `schema:"component1" json:"component1"`
	Material1           string `schema:"material1" json:"material1"`
	Supplier1           string `schema:"supplier1" json:"supplier1"`
	Weight1             string `schema:"weight1" json:"weight1"`
	RecycledPercentage1 string `schema:"recycled_percentage1" json:"recycled_percentage1"`
	Component2          string `schema:"component2" json:"component2"`
	Material2           string `schema:"material2" json:"material2"`
	Supplier2           string `schema:"supplier2" json:"supplier2"`
	Weight2             string `schema:"weight2" json:"weight2"`
	RecycledPercentage2 string `schema:"recycled_percentage2" json:"recycled_percentage2"`
	Certifications      string `schema:"certifications" json:"certifications"`
	ChemicalInfo        string `schema:"chemical_info" json:"chemical_info"`

	ManufacturerName1           string `schema:"manufacturer_name1" json:"manufacturer_name1"`
	ManufacturerLocation1       string `schema:"manufacturer_location1" json:"manufacturer_location1"`
	ManufacturerRole1           string `schema:"manufacturer_role1" json:"manufacturer_role1"`
	ManufacturerCertifications1 string `schema:"manufacturer_certifications1" json:"manufacturer_certifications1"`
	ManufacturerName2           string `schema:"manufacturer_name2" json:"manufacturer_name2"`
	ManufacturerLocation2       string `schema:"manufacturer_location2" json:"manufacturer_location2"`
	ManufacturerRole2           string `schema:"manufacturer_role2" json:"manufacturer_role2"`
	ManufacturerCertifications2 string `schema:"manufacturer_certifications2" json:"manufacturer_certifications2"`
	Process1                    string `schema:"process1" json:"process1"`
	ProcessLocation1            string `schema:"process_location1" json:"process_location1"`
	Process2                    string `schema:"process2" json:"process2"`
	ProcessLocation2            string `schema:"process_location2" json:"process_location2"`

	PackagingComponent1          string `schema:"packaging_component1" json:"packaging_component1"`
	PackagingMaterial1           string `schema:"packaging_material1" json:"packaging_material1"`
	PackagingSupplier1           string `schema:"packaging_supplier1" json:"packaging_supplier1"`
	PackagingWeight1             string `schema:"packaging_weight1" json:"packaging_weight1"`
	PackagingRecycledPercentage1 string `schema:"packaging_recycled_percentage1" json:"packaging_recycled_percentage1"`
	PackagingComponent2          string `schema:"packaging_component2" json:"packaging_component2"`
	PackagingMaterial2           string `schema:"packaging_material2" json:"packaging_material2"`
	PackagingSupplier2           string `schema:"packaging_supplier2" json:"packaging_supplier2"`
	PackagingWeight2             string `schema:"packaging_weight2" json:"packaging_weight2"`
	PackagingRecycledPercentage2 string `schema:"packaging_recycled_percentage2" json:"packaging_recycled_percentage2"`
	DisposalInstructions         string `schema:"disposal_instructions" json:"disposal_instructions"`

	CarbonFootprint   string `schema:"carbon_footprint" json:"carbon_footprint"`
	EnergyConsumption string `schema:"energy_consumption" json:"energy_consumption"`
	WaterUsage        string `schema:"water_usage" json:"water_usage"`
	WasteEmissions    string `schema:"waste_emissions" json:"waste_emissions"`
	Recyclability     string `schema:"recyclability" json:"recyclability"`
	CircularEconomy   string `schema:"circular_economy" json:"circular_economy"`

	CareInstructions        string `schema:"care_instructions" json:"care_instructions"`
	Repairability           string `schema:"repairability" json:"repairability"`
	SpareParts              string `schema:"spare_parts" json:"spare_parts"`
	RepairServices          string `schema:"repair_services" json:"repair_services"`
	DisassemblyInstructions string `schema:"disassembly_instructions" json:"disassembly_instructions"`
	RecyclingOptions        string `schema:"recycling_options" json:"recycling_options"`
	TakeBackPrograms        string `schema:"take_back_programs" json:"take_back_programs"`
}

// Validate checks the fields the dashboard requires before talking to the API.
func (f *PassportForm) Validate() error {
	if f.Name == "" {
		return NewDomainError(ErrCodeMissingField, "Product name is required")
	}
	if f.SKU == "" {
		return NewDomainError(ErrCodeMissingField, "SKU is required")
	}
	if f.Category != "" && CategoryLabel(f.Category) == f.Category {
		return ErrInvalidCategory
	}
	return nil
}

// ToPassport builds the nested passport document from the form.
func (f *PassportForm) ToPassport() Passport {
	return Passport{
		UUID: f.UUID,
		BasicDetails: BasicDetails{
			BasicInformation: BasicInformation{
				ProductName: f.Name,
				SKU:         f.SKU,
				BatchNumber: f.Batch,
				Category:    f.Category,
				Description: f.Description,
			},
			PhysicalProperties: PhysicalProperties{
				Size: Size{
					HeightCm: f.SizeHeight,
					WidthCm:  f.SizeWidth,
					DepthCm:  f.SizeDepth,
				},
				Color:     f.Color,
				WeightKg:  f.Weight,
				VolumeCm3: f.Volume,
			},
			FeaturesAndSpecifications: FeaturesAndSpecifications{
				KeyFeatures:    f.Features,
				Specifications: f.Specifications,
			},
		},
		Materials: Materials{
			MaterialsComposition: MaterialsComposition{
				Components: []Component{
					{
						Component:          f.Component1,
						Material:           f.Material1,
						Supplier:           f.Supplier1,
						WeightKg:           f.Weight1,
						RecycledPercentage: f.RecycledPercentage1,
					},
					{
						Component:          f.Component2,
						Material:           f.Material2,
						Supplier:           f.Supplier2,
						WeightKg:           f.Weight2,
						RecycledPercentage: f.RecycledPercentage2,
					},
				},
				Certifications:      f.Certifications,
				ChemicalInformation: f.ChemicalInfo,
			},
		},
		SupplyChain: SupplyChain{
			SupplyChainInformation: SupplyChainInformation{
				Manufacturers: []Manufacturer{
					{
						Name:           f.ManufacturerName1,
						Location:       f.ManufacturerLocation1,
						Role:           f.ManufacturerRole1,
						Certifications: f.ManufacturerCertifications1,
					},
					{
						Name:           f.ManufacturerName2,
						Location:       f.ManufacturerLocation2,
						Role:           f.ManufacturerRole2,
						Certifications: f.ManufacturerCertifications2,
					},
				},
				ManufacturingProcesses: []ManufacturingProcess{
					{Process: f.Process1, Location: f.ProcessLocation1},
					{Process: f.Process2, Location: f.ProcessLocation2},
				},
			},
		},
		Packaging: Packaging{
			PackagingDetails: PackagingDetails{
				PackagingComponents: []Component{
					{
						Component:          f.PackagingComponent1,
						Material:           f.PackagingMaterial1,
						Supplier:           f.PackagingSupplier1,
						WeightKg:           f.PackagingWeight1,
						RecycledPercentage: f.PackagingRecycledPercentage1,
					},
					{
						Component:          f.PackagingComponent2,
						Material:           f.PackagingMaterial2,
						Supplier:           f.PackagingSupplier2,
						WeightKg:           f.PackagingWeight2,
						RecycledPercentage: f.PackagingRecycledPercentage2,
					},
				},
				DisposalInstructions: f.DisposalInstructions,
			},
		},
		Environmental: Environmental{
			EnvironmentalImpact: EnvironmentalImpact{
				CarbonFootprint:   f.CarbonFootprint,
				EnergyConsumption: f.EnergyConsumption,
				WaterUsage:        f.WaterUsage,
				WasteEmissions:    f.WasteEmissions,
				Recyclability:     f.Recyclability,
				CircularEconomy:   f.CircularEconomy,
			},
		},
		CareAndRepair: CareAndRepair{
			CareInstructions: CareInstructions{
				CareInstructions: f.CareInstructions,
			},
			RepairInformation: RepairInformation{
				Reparability:   f.Repairability,
				SpareParts:     f.SpareParts,
				RepairServices: f.RepairServices,
			},
		},
		EndOfLife: EndOfLife{
			EndOfLifeInformation: EndOfLifeInformation{
				DisassemblyInstructions: f.DisassemblyInstructions,
				RecyclingOptions:        f.RecyclingOptions,
				TakeBackPrograms:        f.TakeBackPrograms,
			},
		},
	}
}

// NewPassportForm flattens a passport into the form. Repeated entries beyond
// the two form slots are dropped; missing entries leave their slot empty.
func NewPassportForm(p Passport) PassportForm {
	info := p.BasicDetails.BasicInformation
	physical := p.BasicDetails.PhysicalProperties
	composition := p.Materials.MaterialsComposition
	supply := p.SupplyChain.SupplyChainInformation
	packaging := p.Packaging.PackagingDetails
	impact := p.Environmental.EnvironmentalImpact
	repair := p.CareAndRepair.RepairInformation
	eol := p.EndOfLife.EndOfLifeInformation

	c1, c2 := entryAt(composition.Components, 0), entryAt(composition.Components, 1)
	m1, m2 := entryAt(supply.Manufacturers, 0), entryAt(supply.Manufacturers, 1)
	p1, p2 := entryAt(supply.ManufacturingProcesses, 0), entryAt(supply.ManufacturingProcesses, 1)
	pk1, pk2 := entryAt(packaging.PackagingComponents, 0), entryAt(packaging.PackagingComponents, 1)

	return PassportForm{
		UUID:           p.UUID,
		Name:           info.ProductName,
		SKU:            info.SKU,
		Batch:          info.BatchNumber,
		Category:       info.Category,
		Description:    info.Description,
		SizeHeight:     physical.Size.HeightCm,
		SizeWidth:      physical.Size.WidthCm,
		SizeDepth:      physical.Size.DepthCm,
		Color:          physical.Color,
		Weight:         physical.WeightKg,
		Volume:         physical.VolumeCm3,
		Features:       p.BasicDetails.FeaturesAndSpecifications.KeyFeatures,
		Specifications: p.BasicDetails.FeaturesAndSpecifications.Specifications,

		Component1:          c1.Component,
		Material1:           c1.Material,
		Supplier1:           c1.Supplier,
		Weight1:             c1.WeightKg,
		RecycledPercentage1: c1.RecycledPercentage,
		Component2:          c2.Component,
		Material2:           c2.Material,
		Supplier2:           c2.Supplier,
		Weight2:             c2.WeightKg,
		RecycledPercentage2: c2.RecycledPercentage,
		Certifications:      composition.Certifications,
		ChemicalInfo:        composition.ChemicalInformation,

		ManufacturerName1:           m1.Name,
		ManufacturerLocation1:       m1.Location,
		ManufacturerRole1:           m1.Role,
		ManufacturerCertifications1: m1.Certifications,
		ManufacturerName2:           m2.Name,
		ManufacturerLocation2:       m2.Location,
		ManufacturerRole2:           m2.Role,
		ManufacturerCertifications2: m2.Certifications,
		Process1:                    p1.Process,
		ProcessLocation1:            p1.Location,
		Process2:                    p2.Process,
		ProcessLocation2:            p2.Location,

		PackagingComponent1:          pk1.Component,
		PackagingMaterial1:           pk1.Material,
		PackagingSupplier1:           pk1.Supplier,
		PackagingWeight1:             pk1.WeightKg,
		PackagingRecycledPercentage1: pk1.RecycledPercentage,
		PackagingComponent2:          pk2.Component,
		PackagingMaterial2:           pk2.Material,
		PackagingSupplier2:           pk2.Supplier,
		PackagingWeight2:             pk2.WeightKg,
		PackagingRecycledPercentage2: pk2.RecycledPercentage,
		DisposalInstructions:         packaging.DisposalInstructions,

		CarbonFootprint:   impact.CarbonFootprint,
		EnergyConsumption: impact.EnergyConsumption,
		WaterUsage:        impact.WaterUsage,
		WasteEmissions:    impact.WasteEmissions,
		Recyclability:     impact.Recyclability,
		CircularEconomy:   impact.CircularEconomy,

		CareInstructions:        p.CareAndRepair.CareInstructions.CareInstructions,
		Repairability:           repair.Reparability,
		SpareParts:              repair.SpareParts,
		RepairServices:          repair.RepairServices,
		DisassemblyInstructions: eol.DisassemblyInstructions,
		RecyclingOptions:        eol.RecyclingOptions,
		TakeBackPrograms:        eol.TakeBackPrograms,
	}
}

// entryAt returns the i-th entry of list, or the zero value when the list is shorter.
func entryAt[T any](list []T, i int) T {
	var zero T
	if i < len(list) {
		return list[i]
	}
	return zero
}
