// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// All is the selector value that disables a categorical filter.
const All = "All"

// Size is the company size category. It is derived from the employee count
// and never assigned independently.
type Size string

const (
	SizeSmall               Size = "Small"
	SizeMedium              Size = "Medium"
	SizeEnterprise          Size = "Enterprise"
	SizeLargeEnterprise     Size = "Large Enterprise"
	SizeVeryLargeEnterprise Size = "Very Large Enterprise"
	SizeAll                 Size = All
)

// Sizes lists the size categories in ascending order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeEnterprise, SizeLargeEnterprise, SizeVeryLargeEnterprise}

// Industry is the fixed industry category attached to a customer.
type Industry string

const (
	IndustryLogistics  Industry = "Logistics"
	IndustryRetail     Industry = "Retail"
	IndustryTechnology Industry = "Technology"
	IndustryHR         Industry = "HR"
	IndustryFinance    Industry = "Finance"
	IndustryAll        Industry = All
)

// Industries lists the supported industry categories.
var Industries = []Industry{IndustryLogistics, IndustryRetail, IndustryTechnology, IndustryHR, IndustryFinance}

// ContactInfo is the optional point of contact for a customer.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Address is the optional postal address of a customer.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Customer is a read-only record supplied by a customer source.
// ContactInfo and Address are nullable and always serialized (as null when absent).
type Customer struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Employees   int          `json:"employees"`
	Size        Size         `json:"size"`
	Industry    Industry     `json:"industry"`
	ContactInfo *ContactInfo `json:"contactInfo"`
	Address     *Address     `json:"address"`
}

// PageInfo describes the requested page of a filtered listing.
type PageInfo struct {
	CurrentPage    int `json:"currentPage"`
	TotalPages     int `json:"totalPages"`
	TotalCustomers int `json:"totalCustomers"`
}

// CustomerPage is the success payload of the customers listing.
type CustomerPage struct {
	Customers []Customer `json:"customers"`
	PageInfo  PageInfo   `json:"pageInfo"`
}
