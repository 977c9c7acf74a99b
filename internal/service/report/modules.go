package report

import (
	"github.com/buildline/crm-backend/internal/domain"
)

func buildModules(src Sources) map[domain.ReportModule]module {
	mods := []module{
		customerModule(src.Customers),
		leadModule(src.Leads),
		appointmentModule(src.Appointments),
		assetModule(src.Assets),
		employeeModule(src.Employees),
		documentModule(src.Documents),
	}
	out := make(map[domain.ReportModule]module, len(mods))
	for _, m := range mods {
		out[m.key()] = m
	}
	return out
}

func customerModule(src customerSource) descriptor[domain.Customer] {
	return descriptor[domain.Customer]{
		Key:       domain.ReportModuleCustomers,
		Title:     "Customers Report",
		DateField: "createdAt",
		Columns: []column[domain.Customer]{
			{
				Title:    "Name",
				Field:    "name",
				Value:    func(c domain.Customer) any { return c.Name },
				Fallback: func(c domain.Customer) any { return c.DisplayName() },
			},
			{Title: "Email", Field: "email", Value: func(c domain.Customer) any { return c.Email }},
			{Title: "Phone", Field: "phone", Value: func(c domain.Customer) any { return c.Phone }},
			{Title: "Company", Field: "company", Value: func(c domain.Customer) any { return c.Company }},
			{Title: "Address", Field: "address", Value: func(c domain.Customer) any { return c.Address }},
			{Title: "Status", Field: "status", Value: func(c domain.Customer) any { return c.Status }},
			{Title: "Created", Field: "createdAt", Value: func(c domain.Customer) any { return c.CreatedAt }},
		},
		Fetch:  src.ListInRange,
		Sample: sampleCustomers,
	}
}

func leadModule(src leadSource) descriptor[domain.Lead] {
	return descriptor[domain.Lead]{
		Key:       domain.ReportModuleLeads,
		Title:     "Leads Report",
		DateField: "createdAt",
		Columns: []column[domain.Lead]{
			{Title: "Name", Field: "name", Value: func(l domain.Lead) any { return l.Name }},
			{Title: "Email", Field: "email", Value: func(l domain.Lead) any { return l.Email }},
			{Title: "Phone", Field: "phone", Value: func(l domain.Lead) any { return l.Phone }},
			{Title: "Company", Field: "company", Value: func(l domain.Lead) any { return l.Company }},
			{Title: "Source", Field: "source", Value: func(l domain.Lead) any { return l.Source }},
			{Title: "Status", Field: "status", Value: func(l domain.Lead) any { return l.Status }},
			{Title: "Estimated Value", Field: "estimatedValue", Value: func(l domain.Lead) any { return l.EstimatedValue }},
			{Title: "Last Contact", Field: "lastContactDate", Value: func(l domain.Lead) any { return l.LastContactDate }},
			{Title: "Created", Field: "createdAt", Value: func(l domain.Lead) any { return l.CreatedAt }},
		},
		Fetch:  src.ListInRange,
		Sample: sampleLeads,
	}
}

func appointmentModule(src appointmentSource) descriptor[domain.Appointment] {
	return descriptor[domain.Appointment]{
		Key:       domain.ReportModuleAppointments,
		Title:     "Appointments Report",
		DateField: "date",
		Columns: []column[domain.Appointment]{
			{Title: "Title", Field: "title", Value: func(a domain.Appointment) any { return a.Title }},
			{Title: "Customer", Field: "customer", Value: func(a domain.Appointment) any { return a.CustomerName }},
			{Title: "Date", Field: "date", Value: func(a domain.Appointment) any { return a.Date }},
			{Title: "Start", Field: "startTime", Value: func(a domain.Appointment) any { return a.StartTime }},
			{Title: "End", Field: "endTime", Value: func(a domain.Appointment) any { return a.EndTime }},
			{Title: "Location", Field: "location", Value: func(a domain.Appointment) any { return a.Location }},
			{Title: "Status", Field: "status", Value: func(a domain.Appointment) any { return a.Status }},
		},
		Fetch:  src.ListInRange,
		Sample: sampleAppointments,
	}
}

func assetModule(src assetSource) descriptor[domain.Asset] {
	return descriptor[domain.Asset]{
		Key:       domain.ReportModuleAssets,
		Title:     "Assets Report",
		DateField: "purchaseDate",
		Columns: []column[domain.Asset]{
			{Title: "Name", Field: "name", Value: func(a domain.Asset) any { return a.Name }},
			{Title: "Category", Field: "category", Value: func(a domain.Asset) any { return a.Category }},
			{Title: "Serial Number", Field: "serialNumber", Value: func(a domain.Asset) any { return a.SerialNumber }},
			{Title: "Status", Field: "status", Value: func(a domain.Asset) any { return a.Status }},
			{Title: "Location", Field: "location", Value: func(a domain.Asset) any { return a.Location }},
			{Title: "Assigned To", Field: "assignedTo", Value: func(a domain.Asset) any { return a.AssignedToName }},
			{Title: "Purchase Date", Field: "purchaseDate", Value: func(a domain.Asset) any { return a.PurchaseDate }},
			{Title: "Value", Field: "value", Value: func(a domain.Asset) any { return a.Value }},
		},
		Fetch:  src.ListInRange,
		Sample: sampleAssets,
	}
}

func employeeModule(src employeeSource) descriptor[domain.Employee] {
	return descriptor[domain.Employee]{
		Key:       domain.ReportModuleEmployees,
		Title:     "Employees Report",
		DateField: "hireDate",
		Columns: []column[domain.Employee]{
			{Title: "Name", Field: "name", Value: func(e domain.Employee) any { return e.FullName() }},
			{Title: "Email", Field: "email", Value: func(e domain.Employee) any { return e.Email }},
			{Title: "Phone", Field: "phone", Value: func(e domain.Employee) any { return e.Phone }},
			{Title: "Position", Field: "position", Value: func(e domain.Employee) any { return e.Position }},
			{Title: "Department", Field: "department", Value: func(e domain.Employee) any { return e.Department }},
			{Title: "Status", Field: "status", Value: func(e domain.Employee) any { return e.Status }},
			{Title: "Hire Date", Field: "hireDate", Value: func(e domain.Employee) any { return e.HireDate }},
			{Title: "Salary", Field: "salary", Value: func(e domain.Employee) any { return e.Salary }},
			{Title: "Skills", Field: "skills", Value: func(e domain.Employee) any { return e.Skills }},
		},
		Fetch:  src.ListInRange,
		Sample: sampleEmployees,
	}
}

func documentModule(src documentSource) descriptor[domain.Document] {
	return descriptor[domain.Document]{
		Key:       domain.ReportModuleDocuments,
		Title:     "Documents Report",
		DateField: "createdAt",
		Columns: []column[domain.Document]{
			{Title: "Title", Field: "title", Value: func(d domain.Document) any { return d.Title }},
			{Title: "Category", Field: "category", Value: func(d domain.Document) any { return d.Category }},
			{Title: "Tags", Field: "tags", Value: func(d domain.Document) any { return d.Tags }},
			{Title: "File Name", Field: "fileName", Value: func(d domain.Document) any { return d.FileName }},
			{Title: "Size", Field: "size", Value: func(d domain.Document) any { return formatSize(d.Size) }},
			{Title: "Customer", Field: "customer", Value: func(d domain.Document) any { return d.CustomerName }},
			{Title: "Uploaded", Field: "createdAt", Value: func(d domain.Document) any { return d.CreatedAt }},
		},
		Fetch:  src.ListInRange,
		Sample: sampleDocuments,
	}
}
