/*
Package SheetFreak is a command line front-end for the Google Sheets and Google Drive APIs.

sheetfreak is intended to be driven by scripts and automated agents that need to manipulate
spreadsheets declaratively - downloading and uploading ranges, clearing ranges, applying cell
formatting and borders, and inspecting revision history - without hand-building API requests.

sheetfreak supports the following commands:

  - authorise, to run the OAuth2 flow and cache the API tokens
  - get, to download a spreadsheet range as a TSV, CSV or JSON file
  - put, to upload a TSV or CSV file to a spreadsheet range
  - clear, to clear the values from one or more ranges
  - format, to apply cell formatting (colors, text style, alignment, wrap and number formats) to a range
  - border, to apply borders to the edges of a range
  - revisions, to display the latest revision of the spreadsheet file
  - version, to display the release version
*/
package sheetfreak
