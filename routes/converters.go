/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/linked"
	"github.com/humaidq/clinicalc/reference"
)

const maxConvertBodyBytes = 16 << 10

// PanelView is a converter panel as rendered on a page.
type PanelView struct {
	Name       string
	Title      string
	Fields     []linked.FieldSpec
	Parameter  string
	Parameters []formula.Analyte
}

func newPanelView(name, title string) PanelView {
	panel, err := linked.NewPanelByName(name)
	if err != nil {
		// Page handlers only pass registered names.
		panic(err)
	}

	view := PanelView{
		Name:   name,
		Title:  title,
		Fields: panel.Fields(),
	}

	if p, ok := panel.Converter().(linked.Parameterized); ok {
		view.Parameter = p.Parameter()
		view.Parameters = formula.Analytes()
	}

	return view
}

func renderConverters(t template.Template, data template.Data, title, flag string, panels ...PanelView) {
	data["PageTitle"] = title
	data["Panels"] = panels
	data["ConvertMessage"] = gate.ConvertMessage
	data["Form"] = map[string]string{}
	data[flag] = true

	t.HTML(http.StatusOK, "converter")
}

// LabConverter renders the lab unit converter.
func LabConverter(t template.Template, data template.Data) {
	renderConverters(t, data, "Lab Unit Converter", "IsLab", newPanelView("lab", "Lab value"))
}

// UnitsConverter renders the weight and height converters.
func UnitsConverter(t template.Template, data template.Data) {
	renderConverters(t, data, "Weight & Height", "IsUnits",
		newPanelView("weight", "Weight"),
		newPanelView("height", "Height"),
	)
}

// TemperatureConverter renders the temperature converter.
func TemperatureConverter(t template.Template, data template.Data) {
	renderConverters(t, data, "Temperature", "IsTemperature", newPanelView("temperature", "Temperature"))
}

// PCVConverter renders the packed cell volume converter.
func PCVConverter(t template.Template, data template.Data) {
	renderConverters(t, data, "Packed Cell Volume", "IsPCV", newPanelView("pcv", "PCV"))
}

// ConvertRequest is one live edit of a converter panel. The client sends
// every field with each request; the server keeps no panel state.
type ConvertRequest struct {
	Parameter string            `json:"parameter"`
	Field     string            `json:"field"`
	Value     string            `json:"value"`
	Values    map[string]string `json:"values"`
	Gender    string            `json:"gender"`
	// Submit marks an explicit convert action, which is refused with a
	// banner message when every field is empty.
	Submit bool `json:"submit"`
}

// FieldStatus is the reference classification of one field.
type FieldStatus struct {
	Status reference.Status `json:"status"`
	Label  string           `json:"label"`
	Arrow  string           `json:"arrow,omitempty"`
	Range  string           `json:"range,omitempty"`
}

// ConvertResponse carries the panel state after the edit.
type ConvertResponse struct {
	Values   map[string]string      `json:"values"`
	Source   string                 `json:"source,omitempty"`
	Error    string                 `json:"error,omitempty"`
	Banner   bool                   `json:"banner,omitempty"`
	Statuses map[string]FieldStatus `json:"statuses,omitempty"`
}

// Convert applies a live edit to a fresh panel rebuilt from the request.
func Convert(c flamego.Context, settings Settings, store reference.Store) {
	name := c.Param("converter")

	panel, err := linked.NewPanelByName(name)
	if err != nil {
		writeJSONError(c, http.StatusNotFound, err.Error())
		return
	}

	var req ConvertRequest

	body := http.MaxBytesReader(c.ResponseWriter(), c.Request().Body().ReadCloser(), maxConvertBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		logger.Debug("Rejected convert request", "converter", name, "error", err)
		writeJSONError(c, http.StatusBadRequest, errRequestBodyInvalid.Error())

		return
	}

	if req.Parameter != "" {
		if err := panel.SelectParameter(req.Parameter); err != nil {
			writeJSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	restored := make(linked.Values, len(req.Values))
	for field, value := range req.Values {
		restored[linked.FieldID(field)] = value
	}

	panel.Restore(restored)

	resp := ConvertResponse{}

	if req.Field != "" {
		_, err := panel.Edit(linked.FieldID(req.Field), req.Value)

		switch {
		case errors.Is(err, linked.ErrUnparsable):
			resp.Error = "Please enter a valid number"
		case err != nil:
			writeJSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	state := panel.State()

	resp.Values = make(map[string]string, len(state.Values))
	texts := make([]string, 0, len(state.Values))

	for field, value := range state.Values {
		resp.Values[string(field)] = value
		texts = append(texts, value)
	}

	resp.Source = string(state.Source)

	if req.Submit && gate.AllEmpty(texts...) {
		logger.Debug("Convert blocked", "converter", name, "reason", errSubmitEmpty)

		resp.Error = gate.ConvertMessage
		resp.Banner = true

		writeJSONStatus(c, http.StatusUnprocessableEntity, resp)

		return
	}

	resp.Statuses = classifyPanel(c.Request().Context(), store, settings.gender(req.Gender), panel)

	writeJSON(c, resp)
}

func classifyPanel(ctx context.Context, store reference.Store, gender reference.Gender, panel *linked.Panel) map[string]FieldStatus {
	values := panel.Values()
	statuses := make(map[string]FieldStatus)

	for _, spec := range panel.Fields() {
		testName := reference.ConverterTest(panel.Converter(), spec.ID)
		if testName == "" {
			continue
		}

		v, err := formula.ParseInput(values[spec.ID])
		if err != nil {
			continue
		}

		row := newResultRow(ctx, store, gender, spec.Label, testName, formula.Quantity{Value: v, Unit: spec.Unit})
		if row.Status == "" {
			continue
		}

		statuses[string(spec.ID)] = FieldStatus{
			Status: row.Status,
			Label:  row.StatusLabel,
			Arrow:  row.Arrow,
			Range:  row.Range,
		}
	}

	if len(statuses) == 0 {
		return nil
	}

	return statuses
}

func writeJSON(c flamego.Context, payload any) {
	writeJSONStatus(c, http.StatusOK, payload)
}

func writeJSONStatus(c flamego.Context, status int, payload any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(payload); err != nil {
		logger.Error("Error encoding JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, message string) {
	writeJSONStatus(c, status, map[string]string{"error": message})
}
