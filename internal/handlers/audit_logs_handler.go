package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/httpresp"
	ucAudit "github.com/BruksfildServices01/dental-clinic/internal/usecase/audit"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	listUC    *ucAudit.ListEvents
	getUC     *ucAudit.GetEvent
	historyUC *ucAudit.RecordHistory
	tablesUC  *ucAudit.ListTables
}

func NewAuditLogsHandler(
	listUC *ucAudit.ListEvents,
	getUC *ucAudit.GetEvent,
	historyUC *ucAudit.RecordHistory,
	tablesUC *ucAudit.ListTables,
) *AuditLogsHandler {
	return &AuditLogsHandler{
		listUC:    listUC,
		getUC:     getUC,
		historyUC: historyUC,
		tablesUC:  tablesUC,
	}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	from, to, ok := queryPeriod(c)
	if !ok {
		return
	}
	page := httpresp.PageFromQuery(c)

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------
	events, total, err := h.listUC.Execute(c.Request.Context(), ucAudit.ListEventsInput{
		Table:    c.Query("table"),
		Action:   c.Query("action"),
		ActorID:  c.Query("actor"),
		RecordID: c.Query("record_id"),
		From:     from,
		To:       to,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Paged(c, page, events, total)
}

func (h *AuditLogsHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ev, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ev)
}

func (h *AuditLogsHandler) RecordHistory(c *gin.Context) {
	events, err := h.historyUC.Execute(c.Request.Context(), c.Param("table"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, events)
}

func (h *AuditLogsHandler) Tables(c *gin.Context) {
	tables, err := h.tablesUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, tables)
}
