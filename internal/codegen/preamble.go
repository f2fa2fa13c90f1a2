package codegen

// Preamble is emitted before the translated program body. It defines the
// Number wrapper the generated statements are written against. Number's
// operator% computes pow, which is what the language's ^ operator lowers to.
const Preamble = `#include <iostream>
#include <cmath>
#include <ctgmath>
using namespace std;

class Number
{
  public:
    double val;
    Number operator%(const Number& n) { return pow(val, n.val); }
    Number operator%(const double& d) { return pow(val, d); }

    Number operator*(const Number& n) { return val * n.val; }
    Number operator*(const double& d) { return val * d; }

    Number operator/(const Number& n) { return val / n.val; }
    Number operator/(const double& d) { return val / d; }

    Number operator+(const Number& n) { return val + n.val; }
    Number operator+(const double& d) { return val + d; }

    Number operator-(const Number& n) { return val - n.val; }
    Number operator-(const double& d) { return val - d; }

    Number(float val) { this->val = val; }
};

ostream &operator<<(ostream &os, const Number &num) { return os << num.val; }

int main()
{
` + "\t"

// Postamble closes the last statement and main.
const Postamble = `;
    return 0;
}`
