package http

import (
	"time"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

// Wire representations of the domain models. Field names follow the
// front-end contract, so they stay camelCase.

type notificationDTO struct {
	ID         types.ID               `json:"id"`
	Type       types.NotificationType `json:"type"`
	Message    string                 `json:"message"`
	ParentID   types.ID               `json:"parentId"`
	ParentType types.ParentType       `json:"parentType"`
	Date       time.Time              `json:"date"`
	IsRead     bool                   `json:"isRead"`
	LinkTo     string                 `json:"linkTo,omitempty"`
}

func toNotificationDTO(n *model.Notification) notificationDTO {
	return notificationDTO{
		ID:         n.ID,
		Type:       n.Type,
		Message:    n.Message,
		ParentID:   n.ParentID,
		ParentType: n.ParentType,
		Date:       n.Date,
		IsRead:     n.IsRead,
		LinkTo:     n.LinkTo,
	}
}

func (d notificationDTO) toModel() *model.Notification {
	return &model.Notification{
		ID:         d.ID,
		Type:       d.Type,
		Message:    d.Message,
		ParentID:   d.ParentID,
		ParentType: d.ParentType,
		Date:       d.Date,
		IsRead:     d.IsRead,
		LinkTo:     d.LinkTo,
	}
}

type executionStepDTO struct {
	ID          types.ID         `json:"id"`
	Timestamp   time.Time        `json:"timestamp"`
	Description string           `json:"description"`
	Status      types.StepStatus `json:"status"`
}

type executionDTO struct {
	ID           types.ID              `json:"id"`
	WorkflowName string                `json:"workflowName"`
	EntityName   string                `json:"entityName"`
	EntityRole   string                `json:"entityRole"`
	Status       types.ExecutionStatus `json:"status"`
	StartTime    time.Time             `json:"startTime"`
	Steps        []executionStepDTO    `json:"steps"`
}

func toExecutionDTO(e *model.DoriExecution) executionDTO {
	steps := make([]executionStepDTO, 0, len(e.Steps))
	for _, step := range e.Steps {
		steps = append(steps, executionStepDTO{
			ID:          step.ID,
			Timestamp:   step.Timestamp,
			Description: step.Description,
			Status:      step.Status,
		})
	}
	return executionDTO{
		ID:           e.ID,
		WorkflowName: e.WorkflowName,
		EntityName:   e.EntityName,
		EntityRole:   e.EntityRole,
		Status:       e.Status,
		StartTime:    e.StartTime,
		Steps:        steps,
	}
}

type actionDTO struct {
	ID              types.ID           `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Type            types.ActionType   `json:"type"`
	Status          types.ActionStatus `json:"status"`
	ConfidenceScore int                `json:"confidenceScore"`
	SuggestedAt     time.Time          `json:"suggestedAt"`
	RelatedEntityID types.ID           `json:"relatedEntityId,omitempty"`
}

func toActionDTO(a *model.DoriAction) actionDTO {
	return actionDTO{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Type:            a.Type,
		Status:          a.Status,
		ConfidenceScore: a.ConfidenceScore,
		SuggestedAt:     a.SuggestedAt,
		RelatedEntityID: a.RelatedEntityID,
	}
}

type approvalDTO struct {
	ID                   types.ID             `json:"id"`
	LandlordID           types.ID             `json:"landlordId"`
	Type                 types.ApprovalType   `json:"type"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	Amount               *float64             `json:"amount,omitempty"`
	DocumentURL          string               `json:"documentUrl,omitempty"`
	Status               types.ApprovalStatus `json:"status"`
	SentDate             time.Time            `json:"sentDate"`
	ViewedDate           *time.Time           `json:"viewedDate,omitempty"`
	ActionDate           *time.Time           `json:"actionDate,omitempty"`
	Notes                string               `json:"notes,omitempty"`
	MaintenanceRequestID types.ID             `json:"maintenanceRequestId,omitempty"`
}

func toApprovalDTO(a *model.ApprovalRequest) approvalDTO {
	return approvalDTO{
		ID:                   a.ID,
		LandlordID:           a.LandlordID,
		Type:                 a.Type,
		Title:                a.Title,
		Description:          a.Description,
		Amount:               a.Amount,
		DocumentURL:          a.DocumentURL,
		Status:               a.Status,
		SentDate:             a.SentDate,
		ViewedDate:           a.ViewedDate,
		ActionDate:           a.ActionDate,
		Notes:                a.Notes,
		MaintenanceRequestID: a.MaintenanceRequestID,
	}
}

type checklistItemDTO struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

type emergencyDTO struct {
	ID          types.ID             `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Severity    types.Severity       `json:"severity"`
	Status      types.IncidentStatus `json:"status"`
	Timestamp   time.Time            `json:"timestamp"`
	RelatedID   types.ID             `json:"relatedId,omitempty"`
	Checklist   []checklistItemDTO   `json:"checklist"`
}

func toEmergencyDTO(e *model.EmergencyItem) emergencyDTO {
	dto := emergencyDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Severity:    e.Severity,
		Status:      e.Status,
		Timestamp:   e.Timestamp,
		RelatedID:   e.RelatedID,
	}
	if e.Checklist != nil {
		dto.Checklist = make([]checklistItemDTO, 0, len(e.Checklist))
		for _, item := range e.Checklist {
			dto.Checklist = append(dto.Checklist, checklistItemDTO{Label: item.Label, Checked: item.Checked})
		}
	}
	return dto
}

func (d emergencyDTO) toModel() *model.EmergencyItem {
	return &model.EmergencyItem{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Severity:    d.Severity,
		Status:      d.Status,
		Timestamp:   d.Timestamp,
		RelatedID:   d.RelatedID,
	}
}

type reminderDTO struct {
	ID                types.ID   `json:"id"`
	PropertyID        types.ID   `json:"propertyId"`
	Task              string     `json:"task"`
	DueDate           time.Time  `json:"dueDate"`
	Frequency         string     `json:"frequency,omitempty"`
	IsCompleted       bool       `json:"isCompleted"`
	LastCompletedDate *time.Time `json:"lastCompletedDate,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

func toReminderDTO(r *model.Reminder) reminderDTO {
	return reminderDTO{
		ID:                r.ID,
		PropertyID:        r.PropertyID,
		Task:              r.Task,
		DueDate:           r.DueDate,
		Frequency:         r.Frequency,
		IsCompleted:       r.IsCompleted,
		LastCompletedDate: r.LastCompletedDate,
		Notes:             r.Notes,
	}
}

func (d reminderDTO) toModel() *model.Reminder {
	return &model.Reminder{
		ID:                d.ID,
		PropertyID:        d.PropertyID,
		Task:              d.Task,
		DueDate:           d.DueDate,
		Frequency:         d.Frequency,
		IsCompleted:       d.IsCompleted,
		LastCompletedDate: d.LastCompletedDate,
		Notes:             d.Notes,
	}
}

type maintenanceDTO struct {
	ID               types.ID                  `json:"id"`
	PropertyID       types.ID                  `json:"propertyId"`
	TenantID         types.ID                  `json:"tenantId,omitempty"`
	IssueTitle       string                    `json:"issueTitle"`
	Description      string                    `json:"description,omitempty"`
	ReportedDate     time.Time                 `json:"reportedDate"`
	Status           types.MaintenanceStatus   `json:"status"`
	Priority         types.MaintenancePriority `json:"priority"`
	AssignedProvider string                    `json:"assignedProvider,omitempty"`
	QuoteAmount      *float64                  `json:"quoteAmount,omitempty"`
	CompletionDate   *time.Time                `json:"completionDate,omitempty"`
	Notes            string                    `json:"notes,omitempty"`
}

func toMaintenanceDTO(m *model.MaintenanceRequest) maintenanceDTO {
	return maintenanceDTO{
		ID:               m.ID,
		PropertyID:       m.PropertyID,
		TenantID:         m.TenantID,
		IssueTitle:       m.IssueTitle,
		Description:      m.Description,
		ReportedDate:     m.ReportedDate,
		Status:           m.Status,
		Priority:         m.Priority,
		AssignedProvider: m.AssignedProvider,
		QuoteAmount:      m.QuoteAmount,
		CompletionDate:   m.CompletionDate,
		Notes:            m.Notes,
	}
}

func (d maintenanceDTO) toModel() *model.MaintenanceRequest {
	return &model.MaintenanceRequest{
		ID:               d.ID,
		PropertyID:       d.PropertyID,
		TenantID:         d.TenantID,
		IssueTitle:       d.IssueTitle,
		Description:      d.Description,
		ReportedDate:     d.ReportedDate,
		Status:           d.Status,
		Priority:         d.Priority,
		AssignedProvider: d.AssignedProvider,
		QuoteAmount:      d.QuoteAmount,
		CompletionDate:   d.CompletionDate,
		Notes:            d.Notes,
	}
}

type tenantDTO struct {
	ID             types.ID   `json:"id"`
	PropertyID     types.ID   `json:"propertyId"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	LeaseStartDate *time.Time `json:"leaseStartDate,omitempty"`
	LeaseEndDate   *time.Time `json:"leaseEndDate,omitempty"`
	RentAmount     *float64   `json:"rentAmount,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

func toTenantDTO(t *model.Tenant) tenantDTO {
	return tenantDTO{
		ID:             t.ID,
		PropertyID:     t.PropertyID,
		Name:           t.Name,
		Email:          t.Email,
		Phone:          t.Phone,
		LeaseStartDate: t.LeaseStartDate,
		LeaseEndDate:   t.LeaseEndDate,
		RentAmount:     t.RentAmount,
		Notes:          t.Notes,
	}
}

func (d tenantDTO) toModel() *model.Tenant {
	return &model.Tenant{
		ID:             d.ID,
		PropertyID:     d.PropertyID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		LeaseStartDate: d.LeaseStartDate,
		LeaseEndDate:   d.LeaseEndDate,
		RentAmount:     d.RentAmount,
		Notes:          d.Notes,
	}
}

type documentDTO struct {
	ID         types.ID   `json:"id"`
	ParentID   types.ID   `json:"parentId"`
	ParentType string     `json:"parentType"`
	Name       string     `json:"name"`
	Type       string     `json:"type,omitempty"`
	UploadDate time.Time  `json:"uploadDate"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

func toDocumentDTO(doc *model.Document) documentDTO {
	return documentDTO{
		ID:         doc.ID,
		ParentID:   doc.ParentID,
		ParentType: doc.ParentType,
		Name:       doc.Name,
		Type:       doc.Type,
		UploadDate: doc.UploadDate,
		ExpiryDate: doc.ExpiryDate,
		Notes:      doc.Notes,
	}
}

func (d documentDTO) toModel() *model.Document {
	return &model.Document{
		ID:         d.ID,
		ParentID:   d.ParentID,
		ParentType: d.ParentType,
		Name:       d.Name,
		Type:       d.Type,
		UploadDate: d.UploadDate,
		ExpiryDate: d.ExpiryDate,
		Notes:      d.Notes,
	}
}
