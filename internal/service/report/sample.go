package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildline/crm-backend/internal/domain"
)

// Sample datasets back the "fallback=sample" report option. They are only
// used when fetching the real records fails.

var sampleDate = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{
			FirstName: "John", LastName: "Carter", Email: "john.carter@example.com",
			Phone: "555-0101", Company: "Carter Homes",
			Address: domain.Address{Street: "12 Oak St", City: "Austin", State: "TX"},
			Status:  domain.CustomerStatusActive, CreatedAt: sampleDate,
		},
		{
			FirstName: "Maria", LastName: "Lopez", Email: "maria.lopez@example.com",
			Phone: "555-0102", Company: "Lopez Builders",
			Address: domain.Address{Street: "48 Pine Ave", City: "Dallas", State: "TX"},
			Status:  domain.CustomerStatusProspect, CreatedAt: sampleDate.AddDate(0, 0, 7),
		},
	}
}

func sampleLeads() []domain.Lead {
	return []domain.Lead{
		{
			Name: "Alex Reed", Email: "alex.reed@example.com", Phone: "555-0201", Company: "Reed Renovations",
			Source: domain.LeadSourceWebsite, Status: domain.LeadStatusNew,
			EstimatedValue: decimal.NewFromInt(25000), CreatedAt: sampleDate,
		},
		{
			Name: "Priya Shah", Email: "priya.shah@example.com", Phone: "555-0202", Company: "Shah Properties",
			Source: domain.LeadSourceReferral, Status: domain.LeadStatusQualified,
			EstimatedValue: decimal.NewFromInt(82000), CreatedAt: sampleDate.AddDate(0, 0, 3),
		},
	}
}

func sampleAppointments() []domain.Appointment {
	return []domain.Appointment{
		{
			Title: "Site survey", CustomerName: "John Carter", Date: sampleDate,
			StartTime: "09:00", EndTime: "10:30", Location: "12 Oak St, Austin",
			Status: domain.AppointmentStatusScheduled,
		},
		{
			Title: "Contract review", CustomerName: "Maria Lopez", Date: sampleDate.AddDate(0, 0, 2),
			StartTime: "14:00", EndTime: "15:00", Location: "Main office",
			Status: domain.AppointmentStatusCompleted,
		},
	}
}

func sampleAssets() []domain.Asset {
	serial := "EX-2041"
	purchased := sampleDate.AddDate(-1, 0, 0)
	return []domain.Asset{
		{
			Name: "Excavator", Category: domain.AssetCategoryEquipment, SerialNumber: &serial,
			Status: domain.AssetStatusInUse, Location: "Yard A", AssignedToName: "Sam Brooks",
			PurchaseDate: &purchased, Value: decimal.NewFromInt(145000),
		},
		{
			Name: "Pickup truck", Category: domain.AssetCategoryVehicle,
			Status: domain.AssetStatusAvailable, Location: "Yard B",
			PurchaseDate: &purchased, Value: decimal.NewFromInt(38500),
		},
	}
}

func sampleEmployees() []domain.Employee {
	hired := sampleDate.AddDate(-2, 0, 0)
	return []domain.Employee{
		{
			FirstName: "Sam", LastName: "Brooks", Email: "sam.brooks@example.com", Phone: "555-0301",
			Position: "Site Supervisor", Department: domain.DepartmentField, Status: domain.EmployeeStatusActive,
			HireDate: &hired, Salary: decimal.NewFromInt(68000), Skills: []string{"excavation", "safety"},
		},
		{
			FirstName: "Lena", LastName: "Kim", Email: "lena.kim@example.com", Phone: "555-0302",
			Position: "Estimator", Department: domain.DepartmentSales, Status: domain.EmployeeStatusActive,
			HireDate: &hired, Salary: decimal.NewFromInt(59000), Skills: []string{"estimating"},
		},
	}
}

func sampleDocuments() []domain.Document {
	return []domain.Document{
		{
			Title: "Carter kitchen contract", Category: domain.DocumentCategoryContract,
			Tags: []string{"kitchen", "signed"}, FileName: "carter-contract.pdf", Size: 248_000,
			CustomerName: "John Carter", CreatedAt: sampleDate,
		},
		{
			Title: "Lopez site permit", Category: domain.DocumentCategoryPermit,
			Tags: []string{"permit"}, FileName: "lopez-permit.pdf", Size: 96_000,
			CustomerName: "Maria Lopez", CreatedAt: sampleDate.AddDate(0, 0, 5),
		},
	}
}

// sampleOrders is the illustrative orders table attached to customer
// reports when enabled. No order entity backs it.
func sampleOrders() domain.ReportTable {
	return domain.ReportTable{
		Title:   "Orders (sample data)",
		Columns: []string{"Order", "Customer", "Date", "Amount", "Status"},
		Rows: [][]string{
			{"ORD-1001", "John Carter", sampleDate.Format(DateLayout), domain.FormatCurrency(decimal.NewFromInt(12500)), "completed"},
			{"ORD-1002", "Maria Lopez", sampleDate.AddDate(0, 0, 9).Format(DateLayout), domain.FormatCurrency(decimal.NewFromInt(4800)), "pending"},
		},
	}
}
