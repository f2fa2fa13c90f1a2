package app

// SampleProgram is the built-in example compiled by the -sample flag.
const SampleProgram = `def x = 2
def y = 3
y = y ^ x + 1
out x + y`
