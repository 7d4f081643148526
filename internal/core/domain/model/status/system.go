package status

// Definition describes a system status to be seeded at startup.
type Definition struct {
	Code        string
	Label       string
	Description string
	SortOrder   int
}

// SystemDefaults returns the protected statuses every installation carries.
// Seeding is idempotent: existing rows keep their labels and descriptions.
func SystemDefaults() []Definition {
	return []Definition{
		{Code: CodeCreated, Label: "Created", Description: "Order registered, awaiting pickup", SortOrder: 10},
		{Code: CodeInTransit, Label: "In Transit", Description: "Order on its way", SortOrder: 20},
		{Code: CodeOutForDelivery, Label: "Out For Delivery", Description: "Order on the final delivery leg", SortOrder: 30},
		{Code: CodeDelivered, Label: "Delivered", Description: "Order handed to the customer", SortOrder: 40},
		{Code: CodeCompleted, Label: "Completed", Description: "Order confirmed and closed", SortOrder: 50},
		{Code: CodeArchived, Label: "Archived", Description: "Order locked against further changes", SortOrder: 60},
	}
}
