package commands

const (
	_etc = "/usr/local/etc/com.github.c9-tech/sheetfreak"
	_var = "/usr/local/var/com.github.c9-tech/sheetfreak"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
