package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/garagebook/internal/common"
	"github.com/dmitrijs2005/garagebook/internal/csvcodec"
	"github.com/dmitrijs2005/garagebook/internal/storage"
)

// notification turns err into the one line shown to the user.
func notification(err error) string {
	switch {
	case errors.Is(err, common.ErrNoActiveVehicle):
		return "Nessun veicolo attivo: usa 'add-vehicle' o 'select'"
	case errors.Is(err, csvcodec.ErrParse):
		return "Errore nel parsing del file CSV"
	case errors.Is(err, common.ErrUnsupportedFile):
		return "Formato file non supportato: usa un file .csv o .txt"
	case errors.Is(err, common.ErrValidation):
		return "Dati non validi: " + detail(err, common.ErrValidation)
	case errors.Is(err, common.ErrorNotFound):
		return "Non trovato: " + detail(err, common.ErrorNotFound)
	case errors.Is(err, storage.ErrCorruptSnapshot):
		return "Dati salvati illeggibili"
	}
	return "Errore: " + err.Error()
}

// detail strips the sentinel text from a wrapped message, leaving the part
// that names the offending field or record.
func detail(err, sentinel error) string {
	msg := err.Error()
	msg = strings.ReplaceAll(msg, ": "+sentinel.Error(), "")
	msg = strings.ReplaceAll(msg, sentinel.Error()+": ", "")
	return msg
}
