package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Veraticus/salesflow/internal/common"
)

// Default output locations, relative to the working directory.
const (
	DefaultCSVPath   = "relatorio.csv"
	DefaultPDFPath   = "relatorio.pdf"
	DefaultChartPath = "grafico_vendas.png"
	DefaultCrashLog  = "error_log.txt"
	DefaultDataDir   = "data"
	DefaultPDFTitle  = "Relatório de Dados Processados"
)

// Config holds the resolved application settings.
type Config struct {
	Columns  Columns
	DataDir  string `validate:"required"`
	CrashLog string `validate:"required"`
	LogFile  string
	Output   Output
	History  History
	PDF      PDF
	Chart    Chart
}

// Output holds the report destinations.
type Output struct {
	CSV   string `validate:"required"`
	PDF   string `validate:"required"`
	Chart string `validate:"required"`
}

// History configures the run history database.
type History struct {
	DB      string `validate:"required_if=Enabled true"`
	Enabled bool
}

// PDF configures the PDF report.
type PDF struct {
	Title string `validate:"required"`
}

// Chart configures the bar chart image.
type Chart struct {
	Width  float64 `validate:"gt=0"` // inches
	Height float64 `validate:"gt=0"` // inches
	Open   bool
}

// Columns lists accepted spreadsheet header names per field. The first name
// of each list is used as the label in generated reports.
type Columns struct {
	ID       []string `validate:"min=1,dive,required"`
	Name     []string `validate:"min=1,dive,required"`
	Category []string `validate:"min=1,dive,required"`
	Price    []string `validate:"min=1,dive,required"`
	Quantity []string `validate:"min=1,dive,required"`
	Date     []string `validate:"min=1,dive,required"`
}

// DefaultColumns returns the header names of the standard sales sheet,
// with English aliases.
func DefaultColumns() Columns {
	return Columns{
		ID:       []string{"ID do Produto", "Product ID", "ID"},
		Name:     []string{"Nome do Produto", "Product Name", "Name"},
		Category: []string{"Categoria", "Category"},
		Price:    []string{"Preço (R$)", "Price"},
		Quantity: []string{"Quantidade Vendida", "Quantity Sold", "Quantity"},
		Date:     []string{"Data da Venda", "Sale Date", "Date"},
	}
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DataDir:  DefaultDataDir,
		CrashLog: DefaultCrashLog,
		Output: Output{
			CSV:   DefaultCSVPath,
			PDF:   DefaultPDFPath,
			Chart: DefaultChartPath,
		},
		History: History{
			Enabled: true,
			DB:      "~/.config/salesflow/history.db",
		},
		PDF:     PDF{Title: DefaultPDFTitle},
		Chart:   Chart{Width: 6, Height: 4, Open: true},
		Columns: DefaultColumns(),
	}
}

// SetDefaults registers default values with viper.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("crash_log", d.CrashLog)
	v.SetDefault("output.csv", d.Output.CSV)
	v.SetDefault("output.pdf", d.Output.PDF)
	v.SetDefault("output.chart", d.Output.Chart)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.db", d.History.DB)
	v.SetDefault("pdf.title", d.PDF.Title)
	v.SetDefault("chart.width", d.Chart.Width)
	v.SetDefault("chart.height", d.Chart.Height)
	v.SetDefault("chart.open", d.Chart.Open)
	v.SetDefault("columns.id", d.Columns.ID)
	v.SetDefault("columns.name", d.Columns.Name)
	v.SetDefault("columns.category", d.Columns.Category)
	v.SetDefault("columns.price", d.Columns.Price)
	v.SetDefault("columns.quantity", d.Columns.Quantity)
	v.SetDefault("columns.date", d.Columns.Date)
}

// Load builds a validated Config from viper.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	cfg := &Config{
		DataDir:  ExpandPath(v.GetString("data_dir")),
		CrashLog: ExpandPath(v.GetString("crash_log")),
		LogFile:  ExpandPath(v.GetString("logging.file")),
		Output: Output{
			CSV:   ExpandPath(v.GetString("output.csv")),
			PDF:   ExpandPath(v.GetString("output.pdf")),
			Chart: ExpandPath(v.GetString("output.chart")),
		},
		History: History{
			Enabled: v.GetBool("history.enabled"),
			DB:      ExpandPath(v.GetString("history.db")),
		},
		PDF: PDF{Title: v.GetString("pdf.title")},
		Chart: Chart{
			Width:  v.GetFloat64("chart.width"),
			Height: v.GetFloat64("chart.height"),
			Open:   v.GetBool("chart.open"),
		},
		Columns: Columns{
			ID:       v.GetStringSlice("columns.id"),
			Name:     v.GetStringSlice("columns.name"),
			Category: v.GetStringSlice("columns.category"),
			Price:    v.GetStringSlice("columns.price"),
			Quantity: v.GetStringSlice("columns.quantity"),
			Date:     v.GetStringSlice("columns.date"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or out of range values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(problems, ", "))
}
