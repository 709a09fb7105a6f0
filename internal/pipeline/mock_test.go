package pipeline

import (
	"context"

	"github.com/sells-group/call-sync/internal/model"
	sfpkg "github.com/sells-group/call-sync/pkg/salesforce"
)

func callEvent(summary string) model.CallEvent {
	return model.CallEvent{
		CallID:   "call-123",
		RecordID: "00Q000000000001",
		Summary:  summary,
	}
}

// mockSF implements sfpkg.Client against canned data.
type mockSF struct {
	describe    *sfpkg.SObjectDescription
	describeErr error

	record   map[string]any
	queryErr error

	updates     []map[string]any
	updateErr   error
	updateCalls int
	injectID    bool
}

func (m *mockSF) Query(ctx context.Context, soql string, out any) error {
	if m.queryErr != nil {
		return m.queryErr
	}
	records := out.(*[]map[string]any)
	if m.record == nil {
		*records = nil
		return nil
	}
	rec := make(map[string]any, len(m.record))
	for k, v := range m.record {
		rec[k] = v
	}
	*records = []map[string]any{rec}
	return nil
}

func (m *mockSF) UpdateOne(ctx context.Context, sObjectName, id string, fields map[string]any) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.injectID {
		fields["Id"] = id
	}
	m.updates = append(m.updates, fields)
	return nil
}

func (m *mockSF) DescribeSObject(ctx context.Context, name string) (*sfpkg.SObjectDescription, error) {
	if m.describeErr != nil {
		return nil, m.describeErr
	}
	return m.describe, nil
}

func leadDescribe() *sfpkg.SObjectDescription {
	text := func(api, label string) sfpkg.SObjectField {
		return sfpkg.SObjectField{Name: api, Label: label, Type: "textarea", Updateable: true, Nillable: true}
	}
	return &sfpkg.SObjectDescription{
		Name: "Lead",
		Fields: []sfpkg.SObjectField{
			text("Motivation_To_Sell__c", "Motivation To Sell"),
			text("Selling_Timeline__c", "Selling Timeline"),
			text("Price_Expectations__c", "Price Expectations"),
			text("Seller_Concerns__c", "Seller Concerns"),
			text("Last_Call_Summary__c", "Last Call Summary"),
			text("Seller_Memory__c", "Seller Memory"),
			{Name: "Last_Call_Date__c", Label: "Last Call Date", Type: "date", Updateable: true, Nillable: true},
			{Name: "Asking_Price__c", Label: "Asking Price", Type: "currency", Updateable: true, Nillable: true},
			{Name: "Call_Attempts__c", Label: "Call Attempts", Type: "double", Updateable: true, Nillable: true},
			{Name: "Appointment_Booked__c", Label: "Appointment Booked", Type: "boolean", Updateable: true, Nillable: false},
		},
	}
}
