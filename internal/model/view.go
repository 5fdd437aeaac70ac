package model

import (
	"fmt"
	"strings"
)

// CompanyInfo is the brand information shown on public passport pages.
type CompanyInfo struct {
	Name    string
	Website string
	Support string
}

// WebsiteLabel returns the website without its scheme.
func (c CompanyInfo) WebsiteLabel() string {
	label := strings.TrimPrefix(c.Website, "https://")
	return strings.TrimPrefix(label, "http://")
}

// PassportView is the display model of the public passport page.
type PassportView struct {
	ID               string
	Name             string
	SKU              string
	BatchNumber      string
	Description      string
	Category         string
	General          GeneralInfo
	Features         []string
	Specifications   []string
	Materials        MaterialsView
	Packaging        PackagingView
	SupplyChain      SupplyChainView
	Environmental    EnvironmentalImpact
	CareInstructions []string
	Repair           RepairInformation
	EndOfLife        EndOfLifeInformation
	Company          CompanyInfo
}

type GeneralInfo struct {
	Size            string
	Color           string
	Weight          string
	Volume          string
	Recyclability   string
	CircularEconomy string
}

type MaterialsView struct {
	Components     []Component
	Certifications []string
	ChemicalInfo   string
}

type PackagingView struct {
	Components           []Component
	DisposalInstructions string
}

type SupplyChainView struct {
	Manufacturers []ManufacturerView
	Processes     []ManufacturingProcess
}

type ManufacturerView struct {
	Name           string
	Location       string
	Role           string
	Certifications []string
}

// NewPassportView builds the public view of a passport. Repeated entries whose
// fields are all blank are left out.
func NewPassportView(p Passport, company CompanyInfo) PassportView {
	info := p.BasicDetails.BasicInformation
	physical := p.BasicDetails.PhysicalProperties
	composition := p.Materials.MaterialsComposition
	supply := p.SupplyChain.SupplyChainInformation
	impact := p.Environmental.EnvironmentalImpact

	view := PassportView{
		ID:          p.UUID,
		Name:        info.ProductName,
		SKU:         info.SKU,
		BatchNumber: info.BatchNumber,
		Description: info.Description,
		Category:    CategoryLabel(info.Category),
		General: GeneralInfo{
			Size:            formatSize(physical.Size),
			Color:           physical.Color,
			Weight:          withUnit(physical.WeightKg, "kg"),
			Volume:          withUnit(physical.VolumeCm3, "cm³"),
			Recyclability:   impact.Recyclability,
			CircularEconomy: impact.CircularEconomy,
		},
		Features:       SplitLines(p.BasicDetails.FeaturesAndSpecifications.KeyFeatures),
		Specifications: SplitLines(p.BasicDetails.FeaturesAndSpecifications.Specifications),
		Materials: MaterialsView{
			Components:     nonBlankComponents(composition.Components),
			Certifications: SplitLines(composition.Certifications),
			ChemicalInfo:   composition.ChemicalInformation,
		},
		Packaging: PackagingView{
			Components:           nonBlankComponents(p.Packaging.PackagingDetails.PackagingComponents),
			DisposalInstructions: p.Packaging.PackagingDetails.DisposalInstructions,
		},
		Environmental:    impact,
		CareInstructions: SplitLines(p.CareAndRepair.CareInstructions.CareInstructions),
		Repair:           p.CareAndRepair.RepairInformation,
		EndOfLife:        p.EndOfLife.EndOfLifeInformation,
		Company:          company,
	}

	for _, m := range supply.Manufacturers {
		if m == (Manufacturer{}) {
			continue
		}
		view.SupplyChain.Manufacturers = append(view.SupplyChain.Manufacturers, ManufacturerView{
			Name:           m.Name,
			Location:       m.Location,
			Role:           m.Role,
			Certifications: SplitLines(m.Certifications),
		})
	}
	for _, proc := range supply.ManufacturingProcesses {
		if proc == (ManufacturingProcess{}) {
			continue
		}
		view.SupplyChain.Processes = append(view.SupplyChain.Processes, proc)
	}

	return view
}

// SplitLines splits multi-line text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func formatSize(s Size) string {
	if s == (Size{}) {
		return ""
	}
	return fmt.Sprintf("%s x %s x %s cm", s.HeightCm, s.WidthCm, s.DepthCm)
}

func withUnit(value, unit string) string {
	if value == "" {
		return ""
	}
	return value + " " + unit
}

func nonBlankComponents(list []Component) []Component {
	var out []Component
	for _, c := range list {
		if c != (Component{}) {
			out = append(out, c)
		}
	}
	return out
}
