package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the column layout of the summary export.
var csvHeader = []string{
	"deck_size",
	"n_tutors",
	"n_cycler_souls",
	"going_first",
	"include_hopper",
	"virgin_birth",
	"prosperity",
	"four_drachma_coin",
	"account_for_crowds",
	"cycler_logic",
	"n_simulations",
	"success_probability",
	"mean_brigades_drawable",
}

// WriteCSV writes one row per summary record. The engine itself knows
// nothing about file formats; this is the thin wrapper downstream
// consumers read.
func WriteCSV(w io.Writer, records []SummaryRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		cfg := rec.Config
		row := []string{
			strconv.Itoa(cfg.DeckSize),
			strconv.Itoa(cfg.NTutors),
			strconv.Itoa(cfg.NCyclerSouls),
			strconv.FormatBool(cfg.GoingFirst),
			strconv.FormatBool(cfg.IncludeHopper),
			strconv.FormatBool(cfg.VirginBirth),
			strconv.FormatBool(cfg.Prosperity),
			strconv.FormatBool(cfg.FourDrachmaCoin),
			strconv.FormatBool(cfg.AccountForCrowds),
			cfg.CyclerLogic.String(),
			strconv.Itoa(rec.Trials),
			strconv.FormatFloat(rec.SuccessProbability, 'f', 6, 64),
			strconv.FormatFloat(rec.MeanBrigades, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
