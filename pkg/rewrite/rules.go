package rewrite

// Rule names.
const (
	NameDriverConstant     = "driver-constant"
	NameBuildDescriptor    = "build-descriptor"
	NameUserAgentAssertion = "user-agent-assertion"
	NameMetadataAssertion  = "metadata-assertion"
)

var (
	driverConstant = MustNewRule(NameDriverConstant,
		`(private static final String VERSION = ")[^"]*(";)`, 0)

	// A comment may sit between the artifactId and version elements.
	buildDescriptor = MustNewRule(NameBuildDescriptor,
		`(?s)(<artifactId>databricks-jdbc</artifactId>\s*(?:<!--.*?-->\s*)?<version>)[^<]+(</version>)`, 1)

	userAgentAssertion = MustNewRule(NameUserAgentAssertion,
		`(assertTrue\(userAgent\.contains\("DatabricksJDBCDriverOSS/)[^"]+("\)\);)`, 0)

	metadataAssertion = MustNewRule(NameMetadataAssertion,
		`(assertEquals\(")[\d.]+-[a-zA-Z0-9]+("(?:, result)?\);)`, 0)
)

// DriverConstant matches the VERSION constant of DriverUtil.java:
//
//	private static final String VERSION = "1.2.3-oss";
func DriverConstant() *Rule {
	return driverConstant
}

// BuildDescriptor matches the first <version> element that follows the
// databricks-jdbc artifactId in pom.xml. Later <version> elements are left
// alone.
func BuildDescriptor() *Rule {
	return buildDescriptor
}

// UserAgentAssertion matches:
//
//	assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/1.2.3-oss"));
func UserAgentAssertion() *Rule {
	return userAgentAssertion
}

// MetadataAssertion matches both of:
//
//	assertEquals("1.2.3-oss");
//	assertEquals("1.2.3-oss", result);
func MetadataAssertion() *Rule {
	return metadataAssertion
}

// Rules returns all known rules keyed by name.
func Rules() map[string]*Rule {
	return map[string]*Rule{
		NameDriverConstant:     driverConstant,
		NameBuildDescriptor:    buildDescriptor,
		NameUserAgentAssertion: userAgentAssertion,
		NameMetadataAssertion:  metadataAssertion,
	}
}
