/*
Package mtfield reads the fields of SWIFT MT style messages, e.g. MT940 or
MT942 account statements. A message is a sequence of lines. Each field starts
with a line that has the field's tag between colons in the first columns
followed by the first line of the field content:

	:20:STARTUMSE
	:25:10020030/1234567
	:86:051?00UEBERWEISG?10931?20Ihre Kontonummer 0000001234
	?21/REFERENCE 1234567890?22
	--

Lines that do not start a field continue the content of the preceding field.
The continued content keeps its line breaks, i.e. the :86: field above has the
content

	"051?00UEBERWEISG?10931?20Ihre Kontonummer 0000001234\n?21/REFERENCE 1234567890?22"

The line "--" separates blocks of fields. It is reported as a field with tag
SeparatorTag and empty content. After a separator the next line must start a
new field. Empty lines are never allowed.

# Line Order

Reading a message is driven by the Assembler, a state machine that checks
each line's type against the set of line types permitted at that position:

	start          FIELD
	after FIELD    FIELD, FIELD_CONTINUATION, SEPARATOR
	after CONT.    FIELD, FIELD_CONTINUATION, SEPARATOR
	after SEP.     FIELD

Any other line fails the whole message with a LineOrderError that has the
line number. A field is complete as soon as the line after it is not a
continuation line or the input ends.

# Field Content

The content of a field is split into subfields by package notation. Package
field has decoders for typed fields.
*/
package mtfield
