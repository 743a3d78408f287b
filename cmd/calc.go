/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/linked"
	"github.com/humaidq/clinicalc/reference"
)

// CmdCalc runs a single calculation and prints the result.
var CmdCalc = newCalcCommand()

func newCalcCommand() *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "Run a calculator or converter once",
		Flags: settingsFlags(),
		Commands: []*cli.Command{
			{
				Name:  "bmi",
				Usage: "Body mass index",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: gate.FieldWeight, Usage: "body weight"},
					&cli.StringFlag{Name: "weight-unit", Value: string(formula.WeightKg), Usage: "kg or lbs"},
					&cli.StringFlag{Name: gate.FieldHeight, Usage: "body height"},
					&cli.StringFlag{Name: "height-unit", Value: string(formula.HeightCm), Usage: "cm, m or ft"},
				},
				Action: calcBMI,
			},
			{
				Name:  "ldl",
				Usage: "LDL cholesterol by the Friedewald equation",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: gate.FieldTotalCholesterol, Usage: "total cholesterol"},
					&cli.StringFlag{Name: gate.FieldHDL, Usage: "HDL cholesterol"},
					&cli.StringFlag{Name: gate.FieldTriglycerides, Usage: "triglycerides"},
					&cli.StringFlag{Name: "unit", Value: string(formula.LipidMgDL), Usage: "mg/dl or mmol/l"},
				},
				Action: calcLDL,
			},
			{
				Name:  "indices",
				Usage: "Red cell indices (MCV, MCH, MCHC)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: gate.FieldHemoglobin, Usage: "hemoglobin (g/dL)"},
					&cli.StringFlag{Name: gate.FieldHematocrit, Usage: "hematocrit (%)"},
					&cli.StringFlag{Name: gate.FieldRBC, Usage: "RBC count (×10¹²/L)"},
				},
				Action: calcIndices,
			},
			{
				Name:  "bilirubin",
				Usage: "Indirect bilirubin from total and direct",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: gate.FieldTotalBilirubin, Usage: "total bilirubin (mg/dL)"},
					&cli.StringFlag{Name: gate.FieldDirectBilirubin, Usage: "direct bilirubin (mg/dL)"},
				},
				Action: calcBilirubin,
			},
			{
				Name:  "rbc",
				Usage: "Estimate the RBC count from hemoglobin and hematocrit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: gate.FieldHemoglobin, Usage: "hemoglobin (g/dL)"},
					&cli.StringFlag{Name: gate.FieldHematocrit, Usage: "hematocrit (%)"},
				},
				Action: calcRBC,
			},
			converterCommand("pcv", "Packed cell volume (L/L ↔ %)", "",
				linked.FieldDecimal, linked.FieldPercent),
			converterCommand("lab", "Lab value between conventional and SI units", "analyte",
				linked.FieldPrimary, linked.FieldSecondary),
			converterCommand("weight", "Weight (kg ↔ lbs)", "",
				linked.FieldKg, linked.FieldLbs),
			converterCommand("height", "Height (m, cm → ft/in)", "",
				linked.FieldMeters, linked.FieldCentimeters),
			withAliases(converterCommand("temperature", "Temperature (°C, °F, K)", "",
				linked.FieldCelsius, linked.FieldFahrenheit, linked.FieldKelvin), "temp"),
		},
	}
}

// calcEnv is what every calculation needs besides its inputs.
type calcEnv struct {
	out    io.Writer
	store  reference.Store
	gender reference.Gender
	close  func()
}

func newCalcEnv(ctx context.Context, cmd *cli.Command) (*calcEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := openReferenceStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &calcEnv{
		out:    cmd.Root().Writer,
		store:  store,
		gender: reference.ParseGender(cfg.Calculators.Gender),
		close:  closeStore,
	}, nil
}

// checkForm gates the flags of a calculator command.
func checkForm(cmd *cli.Command, form gate.Form) (gate.Readiness, error) {
	r := form.Check(cmd.String)
	if !r.Ready {
		return r, fmt.Errorf("%s: %w", form.Message, r.Err())
	}

	return r, nil
}

type calcRow struct {
	label    string
	testName string
	q        formula.Quantity
}

func (env *calcEnv) print(ctx context.Context, rows ...calcRow) error {
	tw := tabwriter.NewWriter(env.out, 0, 4, 2, ' ', 0)

	for _, row := range rows {
		line := row.label + "\t" + row.q.WithUnit()

		c, err := reference.Evaluate(ctx, env.store, row.testName, env.gender, row.q)
		if err != nil {
			calcLogger.Warn("Reference range lookup failed", "test", row.testName, "error", err)
		}

		if c != nil {
			line += "\t" + c.Label()
		}

		fmt.Fprintln(tw, line)
	}

	return tw.Flush()
}

func calcBMI(ctx context.Context, cmd *cli.Command) error {
	r, err := checkForm(cmd, gate.BMIForm)
	if err != nil {
		return err
	}

	wu, err := formula.ParseWeightUnit(cmd.String("weight-unit"))
	if err != nil {
		return err
	}

	hu, err := formula.ParseHeightUnit(cmd.String("height-unit"))
	if err != nil {
		return err
	}

	res, err := formula.BMI(r.Value(gate.FieldWeight), wu, r.Value(gate.FieldHeight), hu)
	if err != nil {
		return err
	}

	env, err := newCalcEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.print(ctx, calcRow{"BMI", reference.TestBMI, res.BMI}); err != nil {
		return err
	}

	fmt.Fprintf(env.out, "Category: %s\n", res.Category)

	return nil
}

func calcLDL(ctx context.Context, cmd *cli.Command) error {
	r, err := checkForm(cmd, gate.LDLForm)
	if err != nil {
		return err
	}

	unit, err := formula.ParseLipidUnit(cmd.String("unit"))
	if err != nil {
		return err
	}

	res, err := formula.LDL(formula.LipidInput{
		TotalCholesterol: r.Value(gate.FieldTotalCholesterol),
		HDL:              r.Value(gate.FieldHDL),
		Triglycerides:    r.Value(gate.FieldTriglycerides),
		Unit:             unit,
	})
	if err != nil {
		return err
	}

	env, err := newCalcEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	rows := []calcRow{
		{"LDL", reference.TestLDL, res.LDLMgDL},
		{"LDL", reference.TestLDL, res.LDLMmolL},
		{"Non-HDL", reference.TestNonHDL, res.NonHDLMgDL},
	}

	if res.TGHDLRatio != nil {
		rows = append(rows, calcRow{"TG/HDL ratio", reference.TestTGHDLRatio, *res.TGHDLRatio})
	}

	if res.AtherogenicCoefficient != nil {
		rows = append(rows, calcRow{"Atherogenic coefficient", reference.TestAtherogenicCoefficient, *res.AtherogenicCoefficient})
	}

	if err := env.print(ctx, rows...); err != nil {
		return err
	}

	fmt.Fprintf(env.out, "Category: %s\n", res.Category)

	for _, a := range res.Advisories {
		fmt.Fprintf(env.out, "Note: %s\n", a.Message)
	}

	return nil
}

func calcIndices(ctx context.Context, cmd *cli.Command) error {
	r, err := checkForm(cmd, gate.IndicesForm)
	if err != nil {
		return err
	}

	res, err := formula.BloodIndices(r.Value(gate.FieldHemoglobin), r.Value(gate.FieldHematocrit), r.Value(gate.FieldRBC))
	if err != nil {
		return err
	}

	env, err := newCalcEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	return env.print(ctx,
		calcRow{"MCV", reference.TestMCV, res.MCV},
		calcRow{"MCH", reference.TestMCH, res.MCH},
		calcRow{"MCHC", reference.TestMCHC, res.MCHC},
	)
}

func calcBilirubin(ctx context.Context, cmd *cli.Command) error {
	r, err := checkForm(cmd, gate.BilirubinForm)
	if err != nil {
		return err
	}

	indirect := formula.IndirectBilirubin(r.Value(gate.FieldTotalBilirubin), r.Value(gate.FieldDirectBilirubin))

	env, err := newCalcEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.print(ctx, calcRow{"Indirect bilirubin", reference.TestBilirubinIndirect, indirect}); err != nil {
		return err
	}

	if indirect.Value < 0 {
		fmt.Fprintf(env.out, "Note: %s\n", formula.AdvisoryDirectExceedsTotal.Message)
	}

	return nil
}

func calcRBC(ctx context.Context, cmd *cli.Command) error {
	r, err := checkForm(cmd, gate.RBCForm)
	if err != nil {
		return err
	}

	rbc, err := formula.EstimateRBC(r.Value(gate.FieldHemoglobin), r.Value(gate.FieldHematocrit))
	if err != nil {
		return err
	}

	env, err := newCalcEnv(ctx, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	return env.print(ctx, calcRow{"Estimated RBC", reference.TestRBC, rbc})
}

// converterCommand builds a command that edits one field of a linked
// converter and prints every field. Exactly one field flag must be set.
func converterCommand(name, usage, parameterFlag string, fields ...linked.FieldID) *cli.Command {
	flags := make([]cli.Flag, 0, len(fields)+1)
	for _, id := range fields {
		flags = append(flags, &cli.StringFlag{Name: string(id), Usage: "value in " + string(id)})
	}

	if parameterFlag != "" {
		flags = append(flags, &cli.StringFlag{
			Name:  parameterFlag,
			Value: string(formula.Glucose),
			Usage: "converter parameter",
		})
	}

	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runConverter(cmd, name, parameterFlag, fields)
		},
	}
}

func withAliases(cmd *cli.Command, aliases ...string) *cli.Command {
	cmd.Aliases = append(cmd.Aliases, aliases...)
	return cmd
}

func runConverter(cmd *cli.Command, name, parameterFlag string, fields []linked.FieldID) error {
	var (
		source linked.FieldID
		raw    string
	)

	for _, id := range fields {
		if !cmd.IsSet(string(id)) {
			continue
		}

		if source != "" {
			return fmt.Errorf("%w: --%s and --%s", errConflictingInputs, source, id)
		}

		source, raw = id, cmd.String(string(id))
	}

	if source == "" || gate.AllEmpty(raw) {
		return errNothingToConvert
	}

	panel, err := linked.NewPanelByName(name)
	if err != nil {
		return err
	}

	if parameterFlag != "" {
		if err := panel.SelectParameter(cmd.String(parameterFlag)); err != nil {
			return err
		}
	}

	values, err := panel.Edit(source, raw)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)

	for _, spec := range panel.Fields() {
		label := spec.Label
		if unit := string(spec.Unit); unit != "" && !strings.Contains(label, unit) {
			label += " (" + unit + ")"
		}

		fmt.Fprintf(tw, "%s\t%s\n", label, values[spec.ID])
	}

	return tw.Flush()
}
