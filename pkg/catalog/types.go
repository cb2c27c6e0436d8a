package catalog

// ArgumentType is the declared type of an argument. Several values are
// unions written the way the catalog spells them, e.g. "Integer | Float".
type ArgumentType string

const (
	ArgBool                   ArgumentType = "Bool"
	ArgURLOrString            ArgumentType = "URL | String"
	ArgString                 ArgumentType = "String"
	ArgEnum                   ArgumentType = "Enum"
	ArgEmoji                  ArgumentType = "Emoji"
	ArgSnowflake              ArgumentType = "Snowflake"
	ArgURL                    ArgumentType = "URL"
	ArgInteger                ArgumentType = "Integer"
	ArgFloatStringInteger     ArgumentType = "Float | String | Integer"
	ArgHowMany                ArgumentType = "HowMany"
	ArgTuple                  ArgumentType = "Tuple"
	ArgSnowflakeOrString      ArgumentType = "Snowflake | String"
	ArgPermission             ArgumentType = "Permission"
	ArgColor                  ArgumentType = "Color"
	ArgDuration               ArgumentType = "Duration"
	ArgIntegerOrFloat         ArgumentType = "Integer | Float"
	ArgStringOrURL            ArgumentType = "String | URL"
	ArgStringOrSnowflake      ArgumentType = "String | Snowflake"
	ArgFloatBoolIntegerString ArgumentType = "Float | Bool | Integer | String"
	ArgFloatIntegerString     ArgumentType = "Float | Integer | String"
	ArgStringBoolIntegerFloat ArgumentType = "String | Bool | Integer | Float"
	ArgHowManyOrString        ArgumentType = "HowMany | String"
	ArgFloatOrInteger         ArgumentType = "Float | Integer"
	ArgFloat                  ArgumentType = "Float"
)

var knownArgumentTypes = map[ArgumentType]struct{}{
	ArgBool: {}, ArgURLOrString: {}, ArgString: {}, ArgEnum: {}, ArgEmoji: {},
	ArgSnowflake: {}, ArgURL: {}, ArgInteger: {}, ArgFloatStringInteger: {},
	ArgHowMany: {}, ArgTuple: {}, ArgSnowflakeOrString: {}, ArgPermission: {},
	ArgColor: {}, ArgDuration: {}, ArgIntegerOrFloat: {}, ArgStringOrURL: {},
	ArgStringOrSnowflake: {}, ArgFloatBoolIntegerString: {}, ArgFloatIntegerString: {},
	ArgStringBoolIntegerFloat: {}, ArgHowManyOrString: {}, ArgFloatOrInteger: {},
	ArgFloat: {},
}

// Known reports whether t is one of the argument types the client knows.
// Unknown values are still passed through untouched.
func (t ArgumentType) Known() bool {
	_, ok := knownArgumentTypes[t]
	return ok
}

// Argument describes a function argument.
type Argument struct {
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Type        ArgumentType `json:"type"`
	Required    bool         `json:"required"`
	Repeatable  *bool        `json:"repeatable,omitempty"`
	Empty       *bool        `json:"empty,omitempty"`
	EnumData    *EnumData    `json:"enumData,omitempty"`
}

// CallbackArgument describes a callback argument. Callbacks only use the
// String and Snowflake types.
type CallbackArgument struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        ArgumentType `json:"type"`
	Required    bool         `json:"required"`
}

// Function is the normalized form of a catalog function.
type Function struct {
	Tag         string     `json:"tag"`
	Description string     `json:"description"`
	Args        []Argument `json:"args"`
	Intents     Intents    `json:"intents"`
	Premium     bool       `json:"premium"`
}

// Callback is the normalized form of a catalog callback.
type Callback struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Args        []CallbackArgument `json:"args"`
	Intents     Intents            `json:"intents"`
	Premium     bool               `json:"premium"`
}
