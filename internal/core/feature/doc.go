// Package feature models feature descriptors: artifacts identified by a
// coordinate, configurations identified by a pid, and the features that group
// them. Descriptors are immutable values produced by builders that validate
// their input as it is added.
//
// A factory configuration is named by its factory pid and an instance name
// joined with FactorySeparator:
//
//	c := feature.NewFactoryConfigurationBuilder("com.example.Foo", "bar").
//		AddValue("port", 8080).
//		MustBuild()
//	c.PID() // "com.example.Foo~bar"
package feature
