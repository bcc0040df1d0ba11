// cropctl maintains the crop reference tables: seeding from CSV exports and
// verifying stored EPPO codes against the EPPO Global Database.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"risk-hand/config"
	"risk-hand/models"
	"risk-hand/providers/eppo"
)

type seedFlags struct {
	eppoCSV        string
	commoditiesCSV string
	apply          bool
}

type verifyFlags struct {
	baseURL string
	token   string
}

func main() {
	var dbPath string

	root := &cobra.Command{
		Use:   "cropctl",
		Short: "Maintain the crop reference catalog",
		Long:  "cropctl seeds the crop reference tables from CSV exports and verifies stored EPPO codes against the EPPO Global Database.",
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "risk_tracker.db", "Path to the tracker SQLite database")

	var sFlags seedFlags
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Import crop reference rows from CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(dbPath, sFlags)
		},
	}
	sf := seedCmd.Flags()
	sf.StringVar(&sFlags.eppoCSV, "eppo-csv", "", "CSV with columns: code,preferred_name,level,parent_code")
	sf.StringVar(&sFlags.commoditiesCSV, "commodities-csv", "", "CSV with columns: code,name,hierarchy_level,parent_code,unit_weight_g")
	sf.BoolVar(&sFlags.apply, "apply", false, "Write to the database (default is a dry-run preview)")

	var vFlags verifyFlags
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check stored EPPO codes against the EPPO REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(dbPath, vFlags)
		},
	}
	vf := verifyCmd.Flags()
	vf.StringVar(&vFlags.baseURL, "base-url", "https://data.eppo.int/api/rest/1.0", "EPPO API base URL")
	vf.StringVar(&vFlags.token, "token", "", "EPPO API auth token (register at gd.eppo.int)")

	root.AddCommand(seedCmd)
	root.AddCommand(verifyCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func runSeed(dbPath string, flags seedFlags) error {
	if flags.eppoCSV == "" && flags.commoditiesCSV == "" {
		return fmt.Errorf("nothing to do: pass --eppo-csv and/or --commodities-csv")
	}

	var codes []models.EPPOCode
	var commodities []models.Annex1Commodity

	if flags.eppoCSV != "" {
		parsed, err := parseEPPOCSV(flags.eppoCSV)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", flags.eppoCSV, err)
		}
		codes = parsed
	}
	if flags.commoditiesCSV != "" {
		parsed, err := parseCommoditiesCSV(flags.commoditiesCSV)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", flags.commoditiesCSV, err)
		}
		commodities = parsed
	}

	fmt.Printf("Parsed %d EPPO codes, %d commodities\n", len(codes), len(commodities))
	if !flags.apply {
		for _, c := range codes {
			fmt.Printf("  eppo  %-8s %s\n", c.Code, c.PreferredName)
		}
		for _, c := range commodities {
			fmt.Printf("  annex %-8s %s\n", c.Code, c.Name)
		}
		fmt.Println("Dry run only. Re-run with --apply to write to the database.")
		return nil
	}

	db, err := openDB(dbPath)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&models.EPPOCode{}, &models.Annex1Commodity{}); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(codes) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&codes).Error; err != nil {
				return err
			}
		}
		if len(commodities) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&commodities).Error; err != nil {
				return err
			}
		}
		fmt.Println("Crop reference updated.")
		return nil
	})
}

func runVerify(dbPath string, flags verifyFlags) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := openDB(dbPath)
	if err != nil {
		return err
	}

	var codes []models.EPPOCode
	if err := db.Find(&codes).Error; err != nil {
		return err
	}
	if len(codes) == 0 {
		fmt.Println("No EPPO codes stored; nothing to verify.")
		return nil
	}

	fetcher := eppo.NewFetcher(&config.Config{
		EPPOBaseURL:   flags.baseURL,
		EPPOAuthToken: flags.token,
	}, logger)

	ctx := context.Background()
	var ok, mismatch, missing, failed int
	for _, code := range codes {
		result, err := fetcher.Verify(ctx, code.Code, code.PreferredName)
		if err != nil {
			failed++
			fmt.Printf("ERROR    %-8s %v\n", code.Code, err)
			continue
		}
		switch result.Status {
		case eppo.VerifyOK:
			ok++
		case eppo.VerifyMismatch:
			mismatch++
			fmt.Printf("MISMATCH %-8s stored=%q api=%q\n", result.Code, result.StoredName, result.APIName)
		case eppo.VerifyMissing:
			missing++
			fmt.Printf("MISSING  %-8s not in EPPO database\n", result.Code)
		}
	}

	fmt.Printf("Checked %d codes: %d ok, %d mismatched, %d missing, %d errors\n",
		len(codes), ok, mismatch, missing, failed)
	return nil
}

func parseEPPOCSV(path string) ([]models.EPPOCode, error) {
	rows, err := readCSV(path, 4)
	if err != nil {
		return nil, err
	}
	out := make([]models.EPPOCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.EPPOCode{
			Code:          row[0],
			PreferredName: row[1],
			Level:         row[2],
			ParentCode:    row[3],
		})
	}
	return out, nil
}

func parseCommoditiesCSV(path string) ([]models.Annex1Commodity, error) {
	rows, err := readCSV(path, 5)
	if err != nil {
		return nil, err
	}
	out := make([]models.Annex1Commodity, 0, len(rows))
	for i, row := range rows {
		level, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad hierarchy level %q", i+2, row[2])
		}
		var weight float64
		if row[4] != "" {
			weight, err = strconv.ParseFloat(row[4], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad unit weight %q", i+2, row[4])
			}
		}
		out = append(out, models.Annex1Commodity{
			Code:           row[0],
			Name:           row[1],
			HierarchyLevel: level,
			ParentCode:     row[3],
			UnitWeightG:    weight,
		})
	}
	return out, nil
}

// readCSV reads a CSV file, skips the header row and enforces a column count.
func readCSV(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = columns

	var rows [][]string
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}
