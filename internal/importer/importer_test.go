package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/model"
)

const sampleCSV = `name,date,type,value,observations
Rent,01/06/2024,Pending,"1500,00",transfer by the 1st
Gym,10/06/2024,Pago,"80,00",
`

func TestRead(t *testing.T) {
	bills, err := Read(strings.NewReader(sampleCSV), datekey.FormatBR)
	require.NoError(t, err)
	require.Len(t, bills, 2)

	assert.Equal(t, "Rent", bills[0].Name)
	assert.Equal(t, datekey.CalendarDate{Year: 2024, Month: 6, Day: 1}, bills[0].DueDate)
	assert.Equal(t, "1500", bills[0].Value.String())
	assert.Equal(t, "transfer by the 1st", bills[0].Observations)

	assert.Equal(t, model.TypePaid, bills[1].Type)
	assert.NotEmpty(t, bills[0].ID)
	assert.NotEqual(t, bills[0].ID, bills[1].ID)
}

func TestReadHeaderOnly(t *testing.T) {
	bills, err := Read(strings.NewReader(Header+"\n"), datekey.FormatBR)
	require.NoError(t, err)
	assert.Nil(t, bills)
}

func TestReadBadRowReportsNumber(t *testing.T) {
	csv := Header + "\nRent,01/06/2024,Pending,\"1500,00\",\nGym,31/02/2024,Pago,\"80,00\",\n"

	_, err := Read(strings.NewReader(csv), datekey.FormatBR)
	require.Error(t, err)
	assert.ErrorContains(t, err, "row 3")
	assert.ErrorIs(t, err, datekey.ErrInvalidDateFormat)
}

func TestReadBadValue(t *testing.T) {
	csv := Header + "\nRent,01/06/2024,Pending,abc,\n"

	_, err := Read(strings.NewReader(csv), datekey.FormatBR)
	require.Error(t, err)
	assert.ErrorContains(t, err, "row 2")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	bills, err := ReadFile(path, datekey.FormatBR)
	require.NoError(t, err)
	assert.Len(t, bills, 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), datekey.FormatBR)
	assert.Error(t, err)
}
