// Package services provides the business logic layer for the CRM.
//
// This package contains:
//   - Registration, JWT login/refresh and password reset/change (AuthService)
//   - Lead management with ownership checks (LeadService)
//   - Staff-managed campaigns and tags (CampaignService, TagService)
//   - Per-user labels and message templates (LabelService, TemplateService)
//   - Extension log ingestion and the log viewer (LogService)
//   - Outbound email and the birthday greeting automation
//
// Services depend on the repository interfaces in domain/ports and are wired
// by ServiceManager.
package services
