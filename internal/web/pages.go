package web

import "github.com/Tellwe/obedir-qr-codes/internal/model"

// EmptyProductsMessage is shown when the product list has no rows.
const EmptyProductsMessage = "No products found. Try a different search or add a new product."

// Form titles.
const (
	TitleNewProduct  = "Add New Product"
	TitleEditProduct = "Edit Product"
)

// Tab is one section of the product editor.
type Tab struct {
	ID    string
	Label string
}

// FormTabs lists the editor sections in display order.
var FormTabs = []Tab{
	{ID: "basic", Label: "Basic Details"},
	{ID: "materials", Label: "Materials"},
	{ID: "supply-chain", Label: "Supply Chain"},
	{ID: "packaging", Label: "Packaging"},
	{ID: "environmental", Label: "Environmental"},
	{ID: "care-repair", Label: "Care & Repair"},
	{ID: "end-of-life", Label: "End of Life"},
	{ID: "qr", Label: "QR Code"},
}

// ActiveTab returns id when it names an editor section, or the first section.
func ActiveTab(id string) string {
	for _, tab := range FormTabs {
		if tab.ID == id {
			return id
		}
	}
	return FormTabs[0].ID
}

// ProductsPage is the model of the dashboard product list.
type ProductsPage struct {
	Query        string
	Products     []model.Summary
	EmptyMessage string
	Error        string
}

// FormPage is the model of the product editor.
type FormPage struct {
	Heading    string
	Action     string
	PassportID string
	Form       model.PassportForm
	Categories []model.Category
	Tabs       []Tab
	ActiveTab  string
	Error      string
	QRURL      string
	PublicURL  string
}

// PassportPage is the model of the public passport page.
type PassportPage struct {
	View  model.PassportView
	QRURL string
}

// ErrorPage is the model of the error page.
type ErrorPage struct {
	Status  int
	Title   string
	Message string
}
