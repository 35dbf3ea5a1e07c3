package dmt

// Lookup flattens one foreign key of a DMT record into a display value.
type Lookup struct {
	ForeignKey   string
	Table        string
	DisplayField string
	Alias        string
}

// Reference aliases exposed on AggregatedRecord.
const (
	AliasWorkcenter            = "workcenter"
	AliasPartNumber            = "part_number"
	AliasEmployee              = "employee"
	AliasCustomer              = "customer"
	AliasInspectionItem        = "inspection_item"
	AliasPreparedBy            = "prepared_by"
	AliasDispositionApprovedBy = "disposition_approved_by"
)

// DefaultLookups resolves every reference of a DMT record. The employees table is
// consulted three times under distinct aliases.
var DefaultLookups = []Lookup{
	{ForeignKey: "workcenter_id", Table: "workcenters", DisplayField: "name", Alias: AliasWorkcenter},
	{ForeignKey: "part_number_id", Table: "part_numbers", DisplayField: "part_number", Alias: AliasPartNumber},
	{ForeignKey: "employee_id", Table: "employees", DisplayField: "name", Alias: AliasEmployee},
	{ForeignKey: "customer_id", Table: "customers", DisplayField: "name", Alias: AliasCustomer},
	{ForeignKey: "inspection_item_id", Table: "inspection_items", DisplayField: "name", Alias: AliasInspectionItem},
	{ForeignKey: "prepared_by_id", Table: "employees", DisplayField: "name", Alias: AliasPreparedBy},
	{ForeignKey: "disposition_approved_by_id", Table: "employees", DisplayField: "name", Alias: AliasDispositionApprovedBy},
}
