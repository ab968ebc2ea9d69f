package commands

const (
	_etc = "/usr/local/etc/sheetfreak"
	_var = "/usr/local/var/sheetfreak"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
