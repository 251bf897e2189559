package hexglobe

// numIcosaFaces is the number of faces of the icosahedron.
const numIcosaFaces = 20

// faceCenterGeo holds the spherical coordinates of each face center.
var faceCenterGeo = [numIcosaFaces]LatLng{
	{0.803582649718989942, 1.248397419617396099},   // face  0
	{1.307747883455638156, 2.536945009877921159},   // face  1
	{1.054751253523952054, -1.347517358900396623},  // face  2
	{0.600191595538186799, -0.450603909469755746},  // face  3
	{0.491715428198773866, 0.401988202911306943},   // face  4
	{0.172745327415618701, 1.678146885280433686},   // face  5
	{0.605929321571350690, 2.953923329812411617},   // face  6
	{0.427370518328979641, -1.888876200336285401},  // face  7
	{-0.079066118549212831, -0.733429513380867741}, // face  8
	{-0.230961644455383637, 0.506495587332349035},  // face  9
	{0.079066118549212831, 2.408163140208925497},   // face 10
	{0.230961644455383637, -2.635097066257444203},  // face 11
	{-0.172745327415618701, -1.463445768309359553}, // face 12
	{-0.605929321571350690, -0.187669323777381622}, // face 13
	{-0.427370518328979641, 1.252716453253569838},  // face 14
	{-0.600191595538186799, 2.690988744120037492},  // face 15
	{-0.491715428198773866, -2.739604450678486295}, // face 16
	{-0.803582649718989942, -1.893195233972397139}, // face 17
	{-1.307747883455638156, -0.604647643711872080}, // face 18
	{-1.054751253523952054, 1.794075294689396615},  // face 19
}

// faceCenterPoint holds the face centers as points on the unit sphere.
var faceCenterPoint = [numIcosaFaces]Vec3d{
	{0.2199307791404606, 0.6583691780274996, 0.7198475378926182},    // face  0
	{-0.2139234834501421, 0.1478171829550703, 0.9656017935214205},   // face  1
	{0.1092625278784797, -0.4811951572873210, 0.8697775121287253},   // face  2
	{0.7428567301586791, -0.3593941678278028, 0.5648005936517033},   // face  3
	{0.8112534709140969, 0.3448953237639384, 0.4721387736413930},    // face  4
	{-0.1055498149613921, 0.9794457296411413, 0.1718874610009365},   // face  5
	{-0.8075407579970092, 0.1533552485898818, 0.5695261994882688},   // face  6
	{-0.2846148069787907, -0.8644080972654206, 0.4144792552473539},  // face  7
	{0.7405621473854482, -0.6673299564565524, -0.0789837646326737},  // face  8
	{0.8512303986474293, 0.4722343788582681, -0.2289137388687808},   // face  9
	{-0.7405621473854481, 0.6673299564565524, 0.0789837646326737},   // face 10
	{-0.8512303986474292, -0.4722343788582682, 0.2289137388687808},  // face 11
	{0.1055498149613919, -0.9794457296411413, -0.1718874610009365},  // face 12
	{0.8075407579970092, -0.1533552485898819, -0.5695261994882688},  // face 13
	{0.2846148069787908, 0.8644080972654204, -0.4144792552473539},   // face 14
	{-0.7428567301586791, 0.3593941678278027, -0.5648005936517033},  // face 15
	{-0.8112534709140971, -0.3448953237639382, -0.4721387736413930}, // face 16
	{-0.2199307791404607, -0.6583691780274996, -0.7198475378926182}, // face 17
	{0.2139234834501420, -0.1478171829550704, -0.9656017935214205},  // face 18
	{-0.1092625278784796, 0.4811951572873210, -0.8697775121287253},  // face 19
}

// faceAxesAzRadsCII holds the azimuth, in radians, from each face center to
// each of its Class II i, j and k axes.
var faceAxesAzRadsCII = [numIcosaFaces][3]float64{
	{5.619958268523939882, 3.525563166130744542, 1.431168063737548730}, // face  0
	{5.760339081714186604, 3.665943979320991689, 1.571548876927796127}, // face  1
	{0.780213654393430055, 4.969003859179821079, 2.874608756786625655}, // face  2
	{0.430469363979999913, 4.619259568766391033, 2.524864466373195467}, // face  3
	{6.130269123335111400, 4.035874020941915804, 1.941478918548720291}, // face  4
	{2.692877706530642877, 0.598482604137447119, 4.787272808923838195}, // face  5
	{2.982963003477243874, 0.888567901084048369, 5.077358105870439581}, // face  6
	{3.532912002790141181, 1.438516900396945656, 5.627307105183336758}, // face  7
	{3.494305004259568154, 1.399909901866372864, 5.588700106652763840}, // face  8
	{3.003214169499538391, 0.908819067106342928, 5.097609271892733906}, // face  9
	{5.930472956509811562, 3.836077854116615875, 1.741682751723420374}, // face 10
	{0.138378484090254847, 4.327168688876645809, 2.232773586483450311}, // face 11
	{0.448714947059150361, 4.637505151845541521, 2.543110049452346023}, // face 12
	{0.158629650112549365, 4.347419854898940135, 2.253024752505744869}, // face 13
	{5.891865957979238535, 3.797470855586042958, 1.703075753192847583}, // face 14
	{2.711123289609793325, 0.616728187216597771, 4.805518392002988683}, // face 15
	{3.294508837434268316, 1.200113735041072948, 5.388903939827463911}, // face 16
	{3.804819692245439833, 1.710424589852244509, 5.899214794638635174}, // face 17
	{3.664438879055192436, 1.570043776661997111, 5.758833981448388070}, // face 18
	{2.361378999196363184, 0.266983896803167583, 4.455774101589558636}, // face 19
}

// faceNeighbors gives the transformation into each adjacent face's
// coordinate system, indexed by [face][quadrant] with quadrants
// central/IJ/KI/JK.
var faceNeighbors = [numIcosaFaces][4]faceOrientIJK{
	{ // face 0
		{0, CoordIJK{0, 0, 0}, 0},
		{4, CoordIJK{2, 0, 2}, 1},
		{1, CoordIJK{2, 2, 0}, 5},
		{5, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 1
		{1, CoordIJK{0, 0, 0}, 0},
		{0, CoordIJK{2, 0, 2}, 1},
		{2, CoordIJK{2, 2, 0}, 5},
		{6, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 2
		{2, CoordIJK{0, 0, 0}, 0},
		{1, CoordIJK{2, 0, 2}, 1},
		{3, CoordIJK{2, 2, 0}, 5},
		{7, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 3
		{3, CoordIJK{0, 0, 0}, 0},
		{2, CoordIJK{2, 0, 2}, 1},
		{4, CoordIJK{2, 2, 0}, 5},
		{8, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 4
		{4, CoordIJK{0, 0, 0}, 0},
		{3, CoordIJK{2, 0, 2}, 1},
		{0, CoordIJK{2, 2, 0}, 5},
		{9, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 5
		{5, CoordIJK{0, 0, 0}, 0},
		{10, CoordIJK{2, 2, 0}, 3},
		{14, CoordIJK{2, 0, 2}, 3},
		{0, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 6
		{6, CoordIJK{0, 0, 0}, 0},
		{11, CoordIJK{2, 2, 0}, 3},
		{10, CoordIJK{2, 0, 2}, 3},
		{1, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 7
		{7, CoordIJK{0, 0, 0}, 0},
		{12, CoordIJK{2, 2, 0}, 3},
		{11, CoordIJK{2, 0, 2}, 3},
		{2, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 8
		{8, CoordIJK{0, 0, 0}, 0},
		{13, CoordIJK{2, 2, 0}, 3},
		{12, CoordIJK{2, 0, 2}, 3},
		{3, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 9
		{9, CoordIJK{0, 0, 0}, 0},
		{14, CoordIJK{2, 2, 0}, 3},
		{13, CoordIJK{2, 0, 2}, 3},
		{4, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 10
		{10, CoordIJK{0, 0, 0}, 0},
		{5, CoordIJK{2, 2, 0}, 3},
		{6, CoordIJK{2, 0, 2}, 3},
		{15, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 11
		{11, CoordIJK{0, 0, 0}, 0},
		{6, CoordIJK{2, 2, 0}, 3},
		{7, CoordIJK{2, 0, 2}, 3},
		{16, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 12
		{12, CoordIJK{0, 0, 0}, 0},
		{7, CoordIJK{2, 2, 0}, 3},
		{8, CoordIJK{2, 0, 2}, 3},
		{17, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 13
		{13, CoordIJK{0, 0, 0}, 0},
		{8, CoordIJK{2, 2, 0}, 3},
		{9, CoordIJK{2, 0, 2}, 3},
		{18, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 14
		{14, CoordIJK{0, 0, 0}, 0},
		{9, CoordIJK{2, 2, 0}, 3},
		{5, CoordIJK{2, 0, 2}, 3},
		{19, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 15
		{15, CoordIJK{0, 0, 0}, 0},
		{16, CoordIJK{2, 0, 2}, 1},
		{19, CoordIJK{2, 2, 0}, 5},
		{10, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 16
		{16, CoordIJK{0, 0, 0}, 0},
		{17, CoordIJK{2, 0, 2}, 1},
		{15, CoordIJK{2, 2, 0}, 5},
		{11, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 17
		{17, CoordIJK{0, 0, 0}, 0},
		{18, CoordIJK{2, 0, 2}, 1},
		{16, CoordIJK{2, 2, 0}, 5},
		{12, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 18
		{18, CoordIJK{0, 0, 0}, 0},
		{19, CoordIJK{2, 0, 2}, 1},
		{17, CoordIJK{2, 2, 0}, 5},
		{13, CoordIJK{0, 2, 2}, 3},
	},
	{ // face 19
		{19, CoordIJK{0, 0, 0}, 0},
		{15, CoordIJK{2, 0, 2}, 1},
		{18, CoordIJK{2, 2, 0}, 5},
		{14, CoordIJK{0, 2, 2}, 3},
	},
}

// adjacentFaceDir maps a face pair to the quadrant of the first face that
// points at the second, or -1 when not adjacent. Derived from faceNeighbors.
var adjacentFaceDir [numIcosaFaces][numIcosaFaces]int

func init() {
	for f := 0; f < numIcosaFaces; f++ {
		for g := 0; g < numIcosaFaces; g++ {
			adjacentFaceDir[f][g] = -1
		}
		adjacentFaceDir[f][f] = quadCentral
		for q := quadIJ; q <= quadJK; q++ {
			adjacentFaceDir[f][faceNeighbors[f][q].face] = q
		}
	}
}

// maxDimByCIIres is the maximum face coordinate dimension (i+j+k) by Class
// II resolution. Entry 16 covers the substrate grid of resolution 15.
var maxDimByCIIres = [17]int{
	2, -1, 14, -1, 98, -1, 686, -1, 4802, -1, 33614, -1,
	235298, -1, 1647086, -1, 11529602,
}

// unitScaleByCIIres is the per-face unit scale distance by Class II
// resolution.
var unitScaleByCIIres = [17]int{
	1, -1, 7, -1, 49, -1, 343, -1, 2401, -1, 16807, -1,
	117649, -1, 823543, -1, 5764801,
}
