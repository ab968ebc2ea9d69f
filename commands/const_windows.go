package commands

const (
	_programdata = `C:\ProgramData\sheetfreak`

	DEFAULT_WORKDIR     = _programdata
	DEFAULT_CREDENTIALS = _programdata + `\.google\credentials.json`
)
